package service

import (
	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditRecorder writes clinic-scoped audit trail entries. Recording is best
// effort: failures are logged, never propagated, so a broken audit table
// cannot take down clinical writes.
type AuditRecorder interface {
	Record(clinicID uuid.UUID, userID *uuid.UUID, action, entityName, entityID string, metadata entity.JSON)
}

type auditRecorder struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditRecorder(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditRecorder {
	return &auditRecorder{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditRecorder) Record(clinicID uuid.UUID, userID *uuid.UUID, action, entityName, entityID string, metadata entity.JSON) {
	if metadata == nil {
		metadata = entity.JSON{}
	}
	metadata["entity"] = entityName
	metadata["entity_id"] = entityID

	auditLog := &entity.AuditLog{
		ClinicID: clinicID,
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(s.db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
