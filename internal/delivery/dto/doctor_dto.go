package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	FullName          string `json:"full_name" validate:"required,min=2,max=255"`
	CRONumber         string `json:"cro_number" validate:"required,max=50"`
	Specialty         string `json:"specialty" validate:"required,specialty"`
	AvailableWeekDays []int  `json:"available_week_days" validate:"required,min=1,dive,gte=0,lte=6"`
	AvailableFromTime string `json:"available_from_time" validate:"required"` // Format: HH:MM:SS
	AvailableToTime   string `json:"available_to_time" validate:"required"`   // Format: HH:MM:SS
}

type UpdateDoctorRequest struct {
	FullName          string `json:"full_name" validate:"omitempty,min=2,max=255"`
	Specialty         string `json:"specialty" validate:"omitempty,specialty"`
	AvailableWeekDays []int  `json:"available_week_days" validate:"omitempty,min=1,dive,gte=0,lte=6"`
	AvailableFromTime string `json:"available_from_time" validate:"omitempty"`
	AvailableToTime   string `json:"available_to_time" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID                uuid.UUID `json:"id"`
	ClinicID          uuid.UUID `json:"clinic_id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	CRONumber         string    `json:"cro_number"`
	Specialty         string    `json:"specialty"`
	AvailableWeekDays []int     `json:"available_week_days"`
	AvailableFromTime string    `json:"available_from_time"`
	AvailableToTime   string    `json:"available_to_time"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
