package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentRequest struct {
	PatientID     uuid.UUID       `json:"patient_id" validate:"required"`
	AppointmentID *uuid.UUID      `json:"appointment_id" validate:"omitempty"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Method        string          `json:"method" validate:"required,payment_method"`
	Description   string          `json:"description" validate:"omitempty"`
	PaidAt        string          `json:"paid_at" validate:"omitempty"` // Format: YYYY-MM-DD, defaults to today
}

// Response DTOs

type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	PatientID   uuid.UUID       `json:"patient_id"`
	PatientName string          `json:"patient_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Description string          `json:"description,omitempty"`
	PaidAt      time.Time       `json:"paid_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
