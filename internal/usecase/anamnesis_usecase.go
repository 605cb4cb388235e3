package usecase

import (
	"context"
	"errors"

	"dental-clinic-service/internal/clinical"
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
	ErrAnamnesisNotFound = errors.New("anamnesis record not found")
	ErrVersionConflict   = errors.New("anamnesis version conflict, retry the operation")
)

// AnamnesisUsecase manages the append-only version chain of a patient's
// clinical questionnaire. Upsert with an id corrects that exact row in
// place; upsert without an id appends version max+1 and finalizes the
// predecessor. The summary column is recomputed from the payload on every
// write, never trusted as stored.
type AnamnesisUsecase interface {
	Upsert(ctx context.Context, clinicID, userID, patientID uuid.UUID, req *dto.UpsertAnamnesisRequest) (*dto.AnamnesisResponse, error)
	ListByPatient(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.AnamnesisListResponse, error)
}

type anamnesisUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	anamnesisRepo repository.AnamnesisRepository
	patientRepo   repository.PatientRepository
	audit         service.AuditRecorder
}

func NewAnamnesisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	anamnesisRepo repository.AnamnesisRepository,
	patientRepo repository.PatientRepository,
	audit service.AuditRecorder,
) AnamnesisUsecase {
	return &anamnesisUsecase{
		db:            db,
		log:           log,
		anamnesisRepo: anamnesisRepo,
		patientRepo:   patientRepo,
		audit:         audit,
	}
}

func (u *anamnesisUsecase) Upsert(ctx context.Context, clinicID, userID, patientID uuid.UUID, req *dto.UpsertAnamnesisRequest) (*dto.AnamnesisResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByIDAndClinic(db, patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	data := buildAnamnesisData(req)
	summary := clinical.ComputeSummary(data)
	attachments := buildAttachments(req.Attachments)

	if req.ID != nil {
		return u.updateInPlace(db, clinicID, userID, *req.ID, data, summary, attachments)
	}
	return u.appendVersion(db, clinicID, userID, patientID, data, summary, attachments)
}

// updateInPlace is the draft-correction path: data and summary change, the
// version number does not.
func (u *anamnesisUsecase) updateInPlace(db *gorm.DB, clinicID, userID, recordID uuid.UUID, data entity.JSON, summary string, attachments entity.JSONList) (*dto.AnamnesisResponse, error) {
	record, err := u.anamnesisRepo.FindByIDAndClinic(db, recordID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find anamnesis %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrAnamnesisNotFound
	}

	record.Data = data
	record.Summary = summary
	if attachments != nil {
		record.Attachments = attachments
	}

	if err := u.anamnesisRepo.Update(db, record); err != nil {
		u.log.Warnf("Failed to update anamnesis %s: %+v", recordID, err)
		return nil, err
	}

	u.audit.Record(clinicID, &userID, entity.AuditActionAnamnesisUpdate, "anamnesis", record.ID.String(), entity.JSON{
		"version": record.Version,
	})

	return converter.AnamnesisToResponse(record), nil
}

func (u *anamnesisUsecase) appendVersion(db *gorm.DB, clinicID, userID, patientID uuid.UUID, data entity.JSON, summary string, attachments entity.JSONList) (*dto.AnamnesisResponse, error) {
	tx := db.Begin()
	defer tx.Rollback()

	record, err := u.appendInTx(tx, clinicID, userID, patientID, data, summary, attachments)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit.Record(clinicID, &userID, entity.AuditActionAnamnesisCreate, "anamnesis", record.ID.String(), entity.JSON{
		"patient_id": patientID.String(),
		"version":    record.Version,
	})

	return converter.AnamnesisToResponse(record), nil
}

// appendInTx links a new draft version after the patient's latest record and
// finalizes the predecessor if it was still a draft. Runs inside the caller's
// transaction so both writes land or neither does.
func (u *anamnesisUsecase) appendInTx(tx *gorm.DB, clinicID, userID, patientID uuid.UUID, data entity.JSON, summary string, attachments entity.JSONList) (*entity.Anamnesis, error) {
	latest, err := u.anamnesisRepo.FindLatestByPatient(tx, patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find latest anamnesis for patient %s: %+v", patientID, err)
		return nil, err
	}

	record := &entity.Anamnesis{
		PatientID:   patientID,
		ClinicID:    clinicID,
		CreatedBy:   userID,
		Status:      entity.AnamnesisStatusDraft,
		Summary:     summary,
		Data:        data,
		Attachments: attachments,
	}
	record.LinkAfter(latest)

	if err := u.anamnesisRepo.Create(tx, record); err != nil {
		// The (patient_id, version) unique index catches concurrent appends.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrVersionConflict
		}
		u.log.Warnf("Failed to create anamnesis for patient %s: %+v", patientID, err)
		return nil, err
	}

	if latest != nil && latest.IsDraft() {
		latest.Finalize()
		if err := u.anamnesisRepo.Update(tx, latest); err != nil {
			u.log.Warnf("Failed to finalize anamnesis %s: %+v", latest.ID, err)
			return nil, err
		}
	}

	return record, nil
}

func (u *anamnesisUsecase) ListByPatient(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.AnamnesisListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByIDAndClinic(db, patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.anamnesisRepo.FindByPatient(db, patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to list anamneses for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AnamnesisListResponse{
		Records: converter.AnamnesesToResponses(records),
		Total:   len(records),
	}, nil
}

func buildAnamnesisData(req *dto.UpsertAnamnesisRequest) entity.JSON {
	data := entity.JSON{
		clinical.KeyChiefComplaint:  req.ChiefComplaint,
		clinical.KeyKnownConditions: req.KnownConditions,
		"allergies":                 req.Allergies,
		"medications":               req.Medications,
	}
	for key, value := range req.Answers {
		data[key] = value
	}
	return data
}

func buildAttachments(attachments []dto.AttachmentDTO) entity.JSONList {
	if len(attachments) == 0 {
		return nil
	}
	list := make(entity.JSONList, len(attachments))
	for i, a := range attachments {
		list[i] = map[string]interface{}{
			"url":  a.URL,
			"name": a.Name,
			"type": a.Type,
		}
	}
	return list
}
