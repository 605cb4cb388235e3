package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Patient, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id, clinicID uuid.UUID) (int64, error)
}
