package usecase

import (
	"context"
	"time"

	"dental-clinic-service/internal/converter"
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/domain/repository"
	"dental-clinic-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OdontogramUsecase records dental chart snapshots. A snapshot is never
// edited after creation; each save appends a new dated entry to the
// patient's history.
type OdontogramUsecase interface {
	CreateSnapshot(ctx context.Context, clinicID, userID, patientID uuid.UUID, req *dto.CreateOdontogramRequest) (*dto.OdontogramResponse, error)
	ListByPatient(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.OdontogramListResponse, error)
}

type odontogramUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	odontogramRepo repository.OdontogramRepository
	patientRepo    repository.PatientRepository
	doctorRepo     repository.DoctorProfileRepository
	audit          service.AuditRecorder
}

func NewOdontogramUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	odontogramRepo repository.OdontogramRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorProfileRepository,
	audit service.AuditRecorder,
) OdontogramUsecase {
	return &odontogramUsecase{
		db:             db,
		log:            log,
		odontogramRepo: odontogramRepo,
		patientRepo:    patientRepo,
		doctorRepo:     doctorRepo,
		audit:          audit,
	}
}

func (u *odontogramUsecase) CreateSnapshot(ctx context.Context, clinicID, userID, patientID uuid.UUID, req *dto.CreateOdontogramRequest) (*dto.OdontogramResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByIDAndClinic(db, patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByUserAndClinic(db, req.DoctorID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	snapshot := &entity.Odontogram{
		PatientID: patientID,
		ClinicID:  clinicID,
		DoctorID:  doctor.UserID,
		Date:      date,
		Teeth:     make([]entity.OdontogramTooth, len(req.Teeth)),
	}
	for i, mark := range req.Teeth {
		snapshot.Teeth[i] = entity.OdontogramTooth{
			ToothNumber: mark.ToothNumber,
			Face:        mark.Face,
			Status:      mark.Status,
			Observation: mark.Observation,
		}
	}

	if err := u.odontogramRepo.Create(db, snapshot); err != nil {
		u.log.Warnf("Failed to create odontogram for patient %s: %+v", patientID, err)
		return nil, err
	}

	u.audit.Record(clinicID, &userID, entity.AuditActionOdontogramCreate, "odontogram", snapshot.ID.String(), entity.JSON{
		"patient_id": patientID.String(),
		"teeth":      len(snapshot.Teeth),
	})

	snapshot.Doctor = *doctor
	return converter.OdontogramToResponse(snapshot), nil
}

func (u *odontogramUsecase) ListByPatient(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.OdontogramListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByIDAndClinic(db, patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	snapshots, err := u.odontogramRepo.FindByPatient(db, patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to list odontograms for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.OdontogramListResponse{
		Snapshots: converter.OdontogramsToResponses(snapshots),
		Total:     len(snapshots),
	}, nil
}
