package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Date      string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time      string    `json:"time" validate:"required"` // Format: HH:MM:SS
	Procedure string    `json:"procedure" validate:"required,procedure"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"omitempty"`
	Date      string    `json:"date" validate:"omitempty"`
	Time      string    `json:"time" validate:"omitempty"`
	Procedure string    `json:"procedure" validate:"omitempty,procedure"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled attended cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                  uuid.UUID `json:"id"`
	ClinicID            uuid.UUID `json:"clinic_id"`
	DoctorID            uuid.UUID `json:"doctor_id"`
	DoctorName          string    `json:"doctor_name,omitempty"`
	PatientID           uuid.UUID `json:"patient_id"`
	PatientName         string    `json:"patient_name,omitempty"`
	AppointmentDateTime time.Time `json:"appointment_datetime"`
	Status              string    `json:"status"`
	Procedure           string    `json:"procedure"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
