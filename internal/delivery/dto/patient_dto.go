package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	CPF         string `json:"cpf" validate:"omitempty,len=11"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Sex         string `json:"sex" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`
	State       string `json:"state" validate:"omitempty,br_state"`
}

type UpdatePatientRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	CPF         string `json:"cpf" validate:"omitempty,len=11"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Sex         string `json:"sex" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`
	State       string `json:"state" validate:"omitempty,br_state"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	ClinicID    uuid.UUID `json:"clinic_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CPF         string    `json:"cpf,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Sex         string    `json:"sex,omitempty"`
	Address     string    `json:"address,omitempty"`
	State       string    `json:"state,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
