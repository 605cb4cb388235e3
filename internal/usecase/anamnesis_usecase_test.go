package usecase

import (
	"context"
	"testing"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type anamnesisFixture struct {
	clinicID      uuid.UUID
	userID        uuid.UUID
	patientID     uuid.UUID
	anamnesisRepo *MockAnamnesisRepository
	patientRepo   *MockPatientRepository
	audit         *MockAuditRecorder
}

func newAnamnesisFixture() *anamnesisFixture {
	f := &anamnesisFixture{
		clinicID:      uuid.New(),
		userID:        uuid.New(),
		patientID:     uuid.New(),
		anamnesisRepo: &MockAnamnesisRepository{},
		audit:         &MockAuditRecorder{},
	}
	f.patientRepo = &MockPatientRepository{
		FindByIDAndClinicFunc: func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Patient, error) {
			if id == f.patientID && clinicID == f.clinicID {
				return &entity.Patient{ID: f.patientID, ClinicID: f.clinicID}, nil
			}
			return nil, nil
		},
	}
	return f
}

func (f *anamnesisFixture) usecase() AnamnesisUsecase {
	return NewAnamnesisUsecase(testDB(), testLogger(), f.anamnesisRepo, f.patientRepo, f.audit)
}

func TestUpsertAnamnesis_InPlaceUpdateKeepsVersion(t *testing.T) {
	f := newAnamnesisFixture()
	previousID := uuid.New()
	recordID := uuid.New()

	f.anamnesisRepo.FindByIDAndClinicFunc = func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Anamnesis, error) {
		if id == recordID && clinicID == f.clinicID {
			return &entity.Anamnesis{
				ID:                recordID,
				PatientID:         f.patientID,
				ClinicID:          f.clinicID,
				Version:           2,
				PreviousVersionID: &previousID,
				Status:            entity.AnamnesisStatusDraft,
				Summary:           "Dor de dente",
				Data:              entity.JSON{"chief_complaint": "Dor de dente"},
			}, nil
		}
		return nil, nil
	}

	var updated *entity.Anamnesis
	f.anamnesisRepo.UpdateFunc = func(db *gorm.DB, record *entity.Anamnesis) error {
		updated = record
		return nil
	}

	resp, err := f.usecase().Upsert(context.Background(), f.clinicID, f.userID, f.patientID, &dto.UpsertAnamnesisRequest{
		ID:              &recordID,
		ChiefComplaint:  "Sangramento gengival",
		KnownConditions: []string{"asma"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Version, "an in-place correction never bumps the version")
	assert.Equal(t, &previousID, resp.PreviousVersionID)
	assert.Equal(t, "Sangramento gengival, Asma", resp.Summary, "the summary is recomputed from the new payload")
	assert.Equal(t, "Sangramento gengival", updated.Data["chief_complaint"])
}

func TestUpsertAnamnesis_RecordNotFound(t *testing.T) {
	f := newAnamnesisFixture()
	f.anamnesisRepo.FindByIDAndClinicFunc = func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Anamnesis, error) {
		return nil, nil
	}

	unknownID := uuid.New()
	_, err := f.usecase().Upsert(context.Background(), f.clinicID, f.userID, f.patientID, &dto.UpsertAnamnesisRequest{
		ID:             &unknownID,
		ChiefComplaint: "Dor de dente",
	})

	assert.ErrorIs(t, err, ErrAnamnesisNotFound)
}

func TestUpsertAnamnesis_PatientNotFound(t *testing.T) {
	f := newAnamnesisFixture()

	_, err := f.usecase().Upsert(context.Background(), f.clinicID, f.userID, uuid.New(), &dto.UpsertAnamnesisRequest{
		ChiefComplaint: "Dor de dente",
	})

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestListAnamnesesByPatient(t *testing.T) {
	f := newAnamnesisFixture()
	firstID := uuid.New()

	f.anamnesisRepo.FindByPatientFunc = func(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.Anamnesis, error) {
		return []entity.Anamnesis{
			{ID: uuid.New(), PatientID: f.patientID, Version: 2, PreviousVersionID: &firstID, Status: entity.AnamnesisStatusDraft},
			{ID: firstID, PatientID: f.patientID, Version: 1, Status: entity.AnamnesisStatusFinalized},
		}, nil
	}

	resp, err := f.usecase().ListByPatient(context.Background(), f.clinicID, f.patientID)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Records[0].Version)
	assert.Equal(t, &firstID, resp.Records[0].PreviousVersionID)
	assert.Equal(t, 1, resp.Records[1].Version)
	assert.Nil(t, resp.Records[1].PreviousVersionID)
}

func TestAppendAnamnesisVersion_ChainsAfterLatest(t *testing.T) {
	f := newAnamnesisFixture()
	firstID := uuid.New()
	second := &entity.Anamnesis{
		ID:                uuid.New(),
		PatientID:         f.patientID,
		ClinicID:          f.clinicID,
		Version:           2,
		PreviousVersionID: &firstID,
		Status:            entity.AnamnesisStatusDraft,
	}

	f.anamnesisRepo.FindLatestByPatientFunc = func(db *gorm.DB, patientID, clinicID uuid.UUID) (*entity.Anamnesis, error) {
		return second, nil
	}
	var created *entity.Anamnesis
	f.anamnesisRepo.CreateFunc = func(db *gorm.DB, record *entity.Anamnesis) error {
		record.ID = uuid.New()
		created = record
		return nil
	}
	var finalized []*entity.Anamnesis
	f.anamnesisRepo.UpdateFunc = func(db *gorm.DB, record *entity.Anamnesis) error {
		finalized = append(finalized, record)
		return nil
	}

	uc := f.usecase().(*anamnesisUsecase)
	record, err := uc.appendInTx(testDB(), f.clinicID, f.userID, f.patientID,
		entity.JSON{"chief_complaint": "Dor de dente"}, "Dor de dente", nil)

	assert.NoError(t, err)
	assert.Equal(t, created, record)
	assert.Equal(t, 3, record.Version)
	assert.Equal(t, &second.ID, record.PreviousVersionID)
	assert.Equal(t, entity.AnamnesisStatusDraft, record.Status)

	// Only the direct predecessor changes; earlier versions stay untouched.
	assert.Len(t, finalized, 1)
	assert.Equal(t, second.ID, finalized[0].ID)
	assert.Equal(t, entity.AnamnesisStatusFinalized, finalized[0].Status)
	assert.Equal(t, &firstID, finalized[0].PreviousVersionID)
}

func TestAppendAnamnesisVersion_FirstVersion(t *testing.T) {
	f := newAnamnesisFixture()

	f.anamnesisRepo.FindLatestByPatientFunc = func(db *gorm.DB, patientID, clinicID uuid.UUID) (*entity.Anamnesis, error) {
		return nil, nil
	}
	f.anamnesisRepo.CreateFunc = func(db *gorm.DB, record *entity.Anamnesis) error {
		record.ID = uuid.New()
		return nil
	}
	updateCalled := false
	f.anamnesisRepo.UpdateFunc = func(db *gorm.DB, record *entity.Anamnesis) error {
		updateCalled = true
		return nil
	}

	uc := f.usecase().(*anamnesisUsecase)
	record, err := uc.appendInTx(testDB(), f.clinicID, f.userID, f.patientID,
		entity.JSON{"chief_complaint": "Dor de dente"}, "Dor de dente", nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, record.Version)
	assert.Nil(t, record.PreviousVersionID)
	assert.False(t, updateCalled, "an empty chain has no predecessor to finalize")
}

func TestAppendAnamnesisVersion_ConcurrentAppendConflict(t *testing.T) {
	f := newAnamnesisFixture()
	latest := &entity.Anamnesis{
		ID:        uuid.New(),
		PatientID: f.patientID,
		ClinicID:  f.clinicID,
		Version:   1,
		Status:    entity.AnamnesisStatusDraft,
	}

	f.anamnesisRepo.FindLatestByPatientFunc = func(db *gorm.DB, patientID, clinicID uuid.UUID) (*entity.Anamnesis, error) {
		return latest, nil
	}
	f.anamnesisRepo.CreateFunc = func(db *gorm.DB, record *entity.Anamnesis) error {
		return gorm.ErrDuplicatedKey
	}
	updateCalled := false
	f.anamnesisRepo.UpdateFunc = func(db *gorm.DB, record *entity.Anamnesis) error {
		updateCalled = true
		return nil
	}

	uc := f.usecase().(*anamnesisUsecase)
	_, err := uc.appendInTx(testDB(), f.clinicID, f.userID, f.patientID,
		entity.JSON{"chief_complaint": "Dor de dente"}, "Dor de dente", nil)

	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.False(t, updateCalled, "a losing append must not finalize anything")
	assert.Equal(t, entity.AnamnesisStatusDraft, latest.Status)
}
