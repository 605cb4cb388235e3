package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnamnesisRepository interface {
	Create(db *gorm.DB, record *entity.Anamnesis) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Anamnesis, error)
	// FindLatestByPatient returns the record with the highest version for
	// the patient, or nil when the chain is empty.
	FindLatestByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) (*entity.Anamnesis, error)
	// FindByPatient returns the full chain newest-created first, with the
	// creator preloaded.
	FindByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.Anamnesis, error)
	Update(db *gorm.DB, record *entity.Anamnesis) error
}
