package repository

import (
	"errors"
	"time"

	"dental-clinic-service/internal/domain/entity"
	domainRepo "dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Patient").
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("Patient").
		Where("clinic_id = ?", clinicID).
		Order("paid_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByClinicAndPeriod(db *gorm.DB, clinicID uuid.UUID, from, to time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("Patient").
		Preload("Appointment.Doctor.User").
		Where("clinic_id = ? AND paid_at >= ? AND paid_at <= ?", clinicID, from, to).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
