package repository

import (
	"dental-clinic-service/internal/domain/entity"
	domainRepo "dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type odontogramRepository struct{}

func NewOdontogramRepository() domainRepo.OdontogramRepository {
	return &odontogramRepository{}
}

// Create inserts the snapshot together with its tooth marks thanks to
// gorm association handling.
func (r *odontogramRepository) Create(db *gorm.DB, snapshot *entity.Odontogram) error {
	return db.Create(snapshot).Error
}

func (r *odontogramRepository) FindByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.Odontogram, error) {
	var snapshots []entity.Odontogram
	err := db.Preload("Teeth").Preload("Doctor.User").
		Where("patient_id = ? AND clinic_id = ?", patientID, clinicID).
		Order("date DESC, created_at DESC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
