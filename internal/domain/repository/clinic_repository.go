package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Clinic, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
}
