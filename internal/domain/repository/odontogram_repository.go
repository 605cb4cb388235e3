package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OdontogramRepository interface {
	Create(db *gorm.DB, snapshot *entity.Odontogram) error
	FindByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.Odontogram, error)
}
