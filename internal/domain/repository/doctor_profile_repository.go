package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	// FindByUserAndClinic resolves a doctor only within the given clinic.
	FindByUserAndClinic(db *gorm.DB, userID, clinicID uuid.UUID) (*entity.DoctorProfile, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}
