package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateClinicRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=255"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

type ClinicResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	Plan              string    `json:"plan"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
