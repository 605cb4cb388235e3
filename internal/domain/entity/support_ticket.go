package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the status of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// SupportTicket is a help request raised by a clinic user. Creation triggers
// a best-effort email notification; the ticket persists even if the email
// send fails.
type SupportTicket struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"clinic_id"`
	CreatedBy uuid.UUID    `gorm:"type:uuid;not null" json:"created_by"`
	Subject   string       `gorm:"type:varchar(255);not null" json:"subject"`
	Message   string       `gorm:"type:text;not null" json:"message"`
	Status    TicketStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}

// IsOpen checks if the ticket is still open.
func (t *SupportTicket) IsOpen() bool {
	return t.Status == TicketStatusOpen
}

// Close marks the ticket closed.
func (t *SupportTicket) Close() {
	t.Status = TicketStatusClosed
}
