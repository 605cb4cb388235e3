package repository

import (
	"time"

	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Payment, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Payment, error)
	FindByClinicAndPeriod(db *gorm.DB, clinicID uuid.UUID, from, to time.Time) ([]entity.Payment, error)
}
