package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error)
	// FindByDoctorAndClinic returns all non-cancelled appointments of a
	// doctor within a clinic. The same-day cut happens at the application
	// layer to avoid timezone-boundary range queries.
	FindByDoctorAndClinic(db *gorm.DB, doctorID, clinicID uuid.UUID) ([]entity.Appointment, error)
	FindByClinicAndDay(db *gorm.DB, clinicID uuid.UUID, dayStart, dayEnd string) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id, clinicID uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
