package repository

import (
	"errors"

	"dental-clinic-service/internal/domain/entity"
	domainRepo "dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supportTicketRepository struct{}

func NewSupportTicketRepository() domainRepo.SupportTicketRepository {
	return &supportTicketRepository{}
}

func (r *supportTicketRepository) Create(db *gorm.DB, ticket *entity.SupportTicket) error {
	return db.Create(ticket).Error
}

func (r *supportTicketRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	err := db.Where("id = ? AND clinic_id = ?", id, clinicID).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *supportTicketRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.SupportTicket, error) {
	var tickets []entity.SupportTicket
	err := db.Preload("Creator").
		Where("clinic_id = ?", clinicID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *supportTicketRepository) Update(db *gorm.DB, ticket *entity.SupportTicket) error {
	return db.Omit("Creator").Save(ticket).Error
}
