package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportTicketRepository interface {
	Create(db *gorm.DB, ticket *entity.SupportTicket) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.SupportTicket, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.SupportTicket, error)
	Update(db *gorm.DB, ticket *entity.SupportTicket) error
}
