package converter

import (
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	response := &dto.PaymentResponse{
		ID:          payment.ID,
		PatientID:   payment.PatientID,
		Amount:      payment.Amount,
		Method:      payment.Method,
		Description: payment.Description,
		PaidAt:      payment.PaidAt,
		CreatedAt:   payment.CreatedAt,
	}

	if payment.Patient.ID != uuid.Nil {
		response.PatientName = payment.Patient.FullName
	}

	return response
}

// PaymentsToResponses converts a slice of Payment entities to DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
