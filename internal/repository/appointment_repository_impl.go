package repository

import (
	"errors"

	"dental-clinic-service/internal/domain/entity"
	domainRepo "dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient").
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorAndClinic(db *gorm.DB, doctorID, clinicID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND clinic_id = ? AND status != ?",
		doctorID, clinicID, entity.AppointmentStatusCancelled).
		Order("appointment_datetime ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByClinicAndDay(db *gorm.DB, clinicID uuid.UUID, dayStart, dayEnd string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient").
		Where("clinic_id = ? AND appointment_datetime >= ? AND appointment_datetime < ?",
			clinicID, dayStart, dayEnd).
		Order("appointment_datetime ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient").Save(appointment).Error
}

// UpdateStatus transitions status atomically within the clinic scope.
// Returns affected rows: 0 means the appointment was not found in the clinic.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id, clinicID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND clinic_id = ?", id, clinicID).
		Update("status", status)
	return result.RowsAffected, result.Error
}
