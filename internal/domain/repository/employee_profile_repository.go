package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeProfileRepository interface {
	Create(db *gorm.DB, profile *entity.EmployeeProfile) error
	FindByUserAndClinic(db *gorm.DB, userID, clinicID uuid.UUID) (*entity.EmployeeProfile, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.EmployeeProfile, error)
	Update(db *gorm.DB, profile *entity.EmployeeProfile) error
}
