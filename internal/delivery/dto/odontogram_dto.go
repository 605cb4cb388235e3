package dto

import (
	"time"

	"github.com/google/uuid"
)

type ToothMarkDTO struct {
	ToothNumber int    `json:"tooth_number" validate:"required,gte=11,lte=85"`
	Face        string `json:"face" validate:"omitempty,max=20"`
	Status      string `json:"status" validate:"required,max=50"`
	Observation string `json:"observation" validate:"omitempty"`
}

// CreateOdontogramRequest always produces a brand-new snapshot; past
// snapshots are never amended.
type CreateOdontogramRequest struct {
	DoctorID uuid.UUID      `json:"doctor_id" validate:"required"`
	Date     string         `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Teeth    []ToothMarkDTO `json:"teeth" validate:"required,min=1,dive"`
}

// Response DTOs

type OdontogramResponse struct {
	ID         uuid.UUID      `json:"id"`
	PatientID  uuid.UUID      `json:"patient_id"`
	DoctorID   uuid.UUID      `json:"doctor_id"`
	DoctorName string         `json:"doctor_name,omitempty"`
	Date       string         `json:"date"`
	Teeth      []ToothMarkDTO `json:"teeth"`
	CreatedAt  time.Time      `json:"created_at"`
}

type OdontogramListResponse struct {
	Snapshots []OdontogramResponse `json:"snapshots"`
	Total     int                  `json:"total"`
}
