package converter

import (
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

// TicketToResponse converts a SupportTicket entity to TicketResponse DTO
func TicketToResponse(ticket *entity.SupportTicket) *dto.TicketResponse {
	if ticket == nil {
		return nil
	}

	response := &dto.TicketResponse{
		ID:        ticket.ID,
		Subject:   ticket.Subject,
		Message:   ticket.Message,
		Status:    string(ticket.Status),
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}

	if ticket.Creator.ID != uuid.Nil {
		response.CreatorName = ticket.Creator.FullName
	}

	return response
}

// TicketsToResponses converts a slice of SupportTicket entities to DTOs
func TicketsToResponses(tickets []entity.SupportTicket) []dto.TicketResponse {
	responses := make([]dto.TicketResponse, len(tickets))
	for i := range tickets {
		responses[i] = *TicketToResponse(&tickets[i])
	}
	return responses
}
