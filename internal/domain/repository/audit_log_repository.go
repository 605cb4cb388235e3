package repository

import (
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByClinic(db *gorm.DB, clinicID uuid.UUID, limit int) ([]entity.AuditLog, error)
}
