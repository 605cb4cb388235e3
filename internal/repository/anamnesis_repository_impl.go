package repository

import (
	"errors"

	"dental-clinic-service/internal/domain/entity"
	domainRepo "dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type anamnesisRepository struct{}

func NewAnamnesisRepository() domainRepo.AnamnesisRepository {
	return &anamnesisRepository{}
}

func (r *anamnesisRepository) Create(db *gorm.DB, record *entity.Anamnesis) error {
	return db.Create(record).Error
}

func (r *anamnesisRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Anamnesis, error) {
	var record entity.Anamnesis
	err := db.Where("id = ? AND clinic_id = ?", id, clinicID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *anamnesisRepository) FindLatestByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) (*entity.Anamnesis, error) {
	var record entity.Anamnesis
	err := db.Where("patient_id = ? AND clinic_id = ?", patientID, clinicID).
		Order("version DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *anamnesisRepository) FindByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.Anamnesis, error) {
	var records []entity.Anamnesis
	err := db.Preload("Creator").
		Where("patient_id = ? AND clinic_id = ?", patientID, clinicID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *anamnesisRepository) Update(db *gorm.DB, record *entity.Anamnesis) error {
	return db.Omit("Patient", "Creator").Save(record).Error
}
