package repository

import (
	"errors"

	"dental-clinic-service/internal/domain/entity"
	domainRepo "dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeProfileRepository struct{}

func NewEmployeeProfileRepository() domainRepo.EmployeeProfileRepository {
	return &employeeProfileRepository{}
}

func (r *employeeProfileRepository) Create(db *gorm.DB, profile *entity.EmployeeProfile) error {
	return db.Create(profile).Error
}

func (r *employeeProfileRepository) FindByUserAndClinic(db *gorm.DB, userID, clinicID uuid.UUID) (*entity.EmployeeProfile, error) {
	var profile entity.EmployeeProfile
	err := db.Preload("User").
		Where("user_id = ? AND clinic_id = ?", userID, clinicID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *employeeProfileRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.EmployeeProfile, error) {
	var profiles []entity.EmployeeProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = employee_profiles.user_id").
		Where("employee_profiles.clinic_id = ? AND users.is_active = ?", clinicID, true).
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *employeeProfileRepository) Update(db *gorm.DB, profile *entity.EmployeeProfile) error {
	return db.Omit("User").Save(profile).Error
}
