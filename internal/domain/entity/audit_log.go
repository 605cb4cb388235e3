package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a clinic-scoped audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClinicID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"clinic_id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
	AuditActionAppointmentCancel = "appointment.cancel"
	AuditActionAnamnesisCreate   = "anamnesis.create"
	AuditActionAnamnesisUpdate   = "anamnesis.update"
	AuditActionOdontogramCreate  = "odontogram.create"
	AuditActionDoctorUpsert      = "doctor.upsert"
	AuditActionPaymentCreate     = "payment.create"
	AuditActionTicketCreate      = "ticket.create"
)
