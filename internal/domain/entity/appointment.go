package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusAttended  AppointmentStatus = "attended"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked slot of a doctor's day. Cancellation is a
// status transition, never a hard delete. A partial unique index on
// (clinic_id, doctor_id, appointment_datetime) over non-cancelled rows turns
// concurrent double-bookings into a write conflict.
type Appointment struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID            uuid.UUID         `gorm:"type:uuid;not null;index" json:"clinic_id"`
	DoctorID            uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentDateTime time.Time         `gorm:"column:appointment_datetime;not null;index" json:"appointment_datetime"`
	Status              AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Procedure           string            `gorm:"type:varchar(100);not null" json:"procedure"`
	Notes               string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes the appointment status to cancelled.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// TimeOfDay returns the HH:MM:SS component of the appointment in UTC,
// the representation the scheduling grid works with.
func (a *Appointment) TimeOfDay() string {
	return a.AppointmentDateTime.UTC().Format("15:04:05")
}

// SameDay reports whether the appointment falls on the given calendar date
// in UTC.
func (a *Appointment) SameDay(date time.Time) bool {
	y1, m1, d1 := a.AppointmentDateTime.UTC().Date()
	y2, m2, d2 := date.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
