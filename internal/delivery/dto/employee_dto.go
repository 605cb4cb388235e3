package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateEmployeeRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,min=2,max=255"`
	Role        string `json:"role" validate:"required,employee_role"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

type UpdateEmployeeRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2,max=255"`
	Role        string `json:"role" validate:"omitempty,employee_role"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

// Response DTOs

type EmployeeResponse struct {
	ID          uuid.UUID `json:"id"`
	ClinicID    uuid.UUID `json:"clinic_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}
