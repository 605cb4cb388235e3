package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dental-clinic-service/config"
	"dental-clinic-service/internal/converter"
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/domain/repository"
	"dental-clinic-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound      = errors.New("support ticket not found")
	ErrTicketAlreadyClosed = errors.New("support ticket is already closed")
)

type TicketUsecase interface {
	CreateTicket(ctx context.Context, clinicID, userID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	ListTickets(ctx context.Context, clinicID uuid.UUID) (*dto.TicketListResponse, error)
	CloseTicket(ctx context.Context, clinicID, ticketID uuid.UUID) (*dto.TicketResponse, error)
}

type ticketUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	smtpCfg    config.SMTPConfig
	ticketRepo repository.SupportTicketRepository
	userRepo   repository.UserRepository
	mailer     service.Mailer
	audit      service.AuditRecorder
}

func NewTicketUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	smtpCfg config.SMTPConfig,
	ticketRepo repository.SupportTicketRepository,
	userRepo repository.UserRepository,
	mailer service.Mailer,
	audit service.AuditRecorder,
) TicketUsecase {
	return &ticketUsecase{
		db:         db,
		log:        log,
		smtpCfg:    smtpCfg,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		mailer:     mailer,
		audit:      audit,
	}
}

func (u *ticketUsecase) CreateTicket(ctx context.Context, clinicID, userID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	ticket := &entity.SupportTicket{
		ClinicID:  clinicID,
		CreatedBy: userID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    entity.TicketStatusOpen,
	}
	if err := u.ticketRepo.Create(db, ticket); err != nil {
		u.log.Warnf("Failed to create ticket: %+v", err)
		return nil, err
	}

	u.audit.Record(clinicID, &userID, entity.AuditActionTicketCreate, "ticket", ticket.ID.String(), entity.JSON{
		"subject": ticket.Subject,
	})

	// Fire and forget: the ticket exists whether or not the support inbox
	// hears about it.
	go u.notifySupport(ticket, user)

	ticket.Creator = *user
	return converter.TicketToResponse(ticket), nil
}

func (u *ticketUsecase) notifySupport(ticket *entity.SupportTicket, creator *entity.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	subject := fmt.Sprintf("[Suporte] %s", ticket.Subject)
	text := fmt.Sprintf(
		"Novo chamado de suporte\n\nChamado: %s\nClínica: %s\nAberto por: %s <%s>\n\n%s\n",
		ticket.ID, ticket.ClinicID, creator.FullName, creator.Email, ticket.Message,
	)

	if err := u.mailer.Send(ctx, u.smtpCfg.SupportInbox, subject, text, ""); err != nil {
		u.log.Warnf("Failed to send support notification for ticket %s: %+v", ticket.ID, err)
	}
}

func (u *ticketUsecase) ListTickets(ctx context.Context, clinicID uuid.UUID) (*dto.TicketListResponse, error) {
	tickets, err := u.ticketRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list tickets: %+v", err)
		return nil, err
	}
	return &dto.TicketListResponse{
		Tickets: converter.TicketsToResponses(tickets),
		Total:   len(tickets),
	}, nil
}

func (u *ticketUsecase) CloseTicket(ctx context.Context, clinicID, ticketID uuid.UUID) (*dto.TicketResponse, error) {
	db := u.db.WithContext(ctx)

	ticket, err := u.ticketRepo.FindByIDAndClinic(db, ticketID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", ticketID, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if !ticket.IsOpen() {
		return nil, ErrTicketAlreadyClosed
	}

	ticket.Close()
	if err := u.ticketRepo.Update(db, ticket); err != nil {
		u.log.Warnf("Failed to close ticket %s: %+v", ticketID, err)
		return nil, err
	}

	return converter.TicketToResponse(ticket), nil
}
