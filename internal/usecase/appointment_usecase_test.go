package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type appointmentFixture struct {
	clinicID        uuid.UUID
	userID          uuid.UUID
	doctorID        uuid.UUID
	patientID       uuid.UUID
	doctorRepo      *MockDoctorProfileRepository
	patientRepo     *MockPatientRepository
	appointmentRepo *MockAppointmentRepository
	audit           *MockAuditRecorder
}

func newAppointmentFixture() *appointmentFixture {
	f := &appointmentFixture{
		clinicID:  uuid.New(),
		userID:    uuid.New(),
		doctorID:  uuid.New(),
		patientID: uuid.New(),
		audit:     &MockAuditRecorder{},
	}

	f.doctorRepo = &MockDoctorProfileRepository{
		FindByUserAndClinicFunc: func(db *gorm.DB, userID, clinicID uuid.UUID) (*entity.DoctorProfile, error) {
			if userID == f.doctorID && clinicID == f.clinicID {
				return &entity.DoctorProfile{
					UserID:            f.doctorID,
					ClinicID:          f.clinicID,
					AvailableWeekDays: entity.WeekDaySet{1, 2, 3, 4, 5},
					AvailableFromTime: "08:00:00",
					AvailableToTime:   "12:00:00",
				}, nil
			}
			return nil, nil
		},
	}
	f.patientRepo = &MockPatientRepository{
		FindByIDAndClinicFunc: func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Patient, error) {
			if id == f.patientID && clinicID == f.clinicID {
				return &entity.Patient{ID: f.patientID, ClinicID: f.clinicID, FullName: "Maria Souza"}, nil
			}
			return nil, nil
		},
	}
	f.appointmentRepo = &MockAppointmentRepository{
		FindByDoctorAndClinicFunc: func(db *gorm.DB, doctorID, clinicID uuid.UUID) ([]entity.Appointment, error) {
			return nil, nil
		},
	}
	return f
}

func (f *appointmentFixture) usecase() AppointmentUsecase {
	db := testDB()
	log := testLogger()
	availability := NewAvailabilityUsecase(db, log, f.doctorRepo, f.appointmentRepo)
	return NewAppointmentUsecase(db, log, f.appointmentRepo, f.patientRepo, availability, f.audit)
}

func TestCreateAppointment(t *testing.T) {
	f := newAppointmentFixture()

	var created *entity.Appointment
	f.appointmentRepo.CreateFunc = func(db *gorm.DB, appointment *entity.Appointment) error {
		appointment.ID = uuid.New()
		created = appointment
		return nil
	}
	f.appointmentRepo.FindByIDAndClinicFunc = func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error) {
		return created, nil
	}

	resp, err := f.usecase().CreateAppointment(context.Background(), f.clinicID, f.userID, &dto.CreateAppointmentRequest{
		DoctorID:  f.doctorID,
		PatientID: f.patientID,
		Date:      "2026-03-02",
		Time:      "09:00:00",
		Procedure: "limpeza",
	})

	assert.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "limpeza", resp.Procedure)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), resp.AppointmentDateTime)
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.audit.RecordCallCount))
}

func TestCreateAppointment_PatientNotFound(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.usecase().CreateAppointment(context.Background(), f.clinicID, f.userID, &dto.CreateAppointmentRequest{
		DoctorID:  f.doctorID,
		PatientID: uuid.New(),
		Date:      "2026-03-02",
		Time:      "09:00:00",
		Procedure: "limpeza",
	})

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.FindByDoctorAndClinicFunc = func(db *gorm.DB, doctorID, clinicID uuid.UUID) ([]entity.Appointment, error) {
		return []entity.Appointment{
			{
				ID:                  uuid.New(),
				AppointmentDateTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				Status:              entity.AppointmentStatusScheduled,
			},
		}, nil
	}

	_, err := f.usecase().CreateAppointment(context.Background(), f.clinicID, f.userID, &dto.CreateAppointmentRequest{
		DoctorID:  f.doctorID,
		PatientID: f.patientID,
		Date:      "2026-03-02",
		Time:      "09:00:00",
		Procedure: "limpeza",
	})

	assert.ErrorIs(t, err, ErrTimeNotAvailable)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.appointmentRepo.CreateCallCount), "no insert is attempted for a taken slot")
}

func TestCreateAppointment_DeactivatedDoctor(t *testing.T) {
	f := newAppointmentFixture()
	inactive := false
	f.doctorRepo.FindByUserAndClinicFunc = func(db *gorm.DB, userID, clinicID uuid.UUID) (*entity.DoctorProfile, error) {
		return &entity.DoctorProfile{
			UserID:            f.doctorID,
			ClinicID:          f.clinicID,
			AvailableWeekDays: entity.WeekDaySet{1, 2, 3, 4, 5},
			AvailableFromTime: "08:00:00",
			AvailableToTime:   "12:00:00",
			User:              entity.User{ID: f.doctorID, IsActive: &inactive},
		}, nil
	}

	_, err := f.usecase().CreateAppointment(context.Background(), f.clinicID, f.userID, &dto.CreateAppointmentRequest{
		DoctorID:  f.doctorID,
		PatientID: f.patientID,
		Date:      "2026-03-02",
		Time:      "09:00:00",
		Procedure: "limpeza",
	})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.appointmentRepo.CreateCallCount))
}

func TestCreateAppointment_DuplicateKeyBackstop(t *testing.T) {
	// The availability pre-check passes but a concurrent booking wins the
	// race; the unique index surfaces it as a duplicated key.
	f := newAppointmentFixture()
	f.appointmentRepo.CreateFunc = func(db *gorm.DB, appointment *entity.Appointment) error {
		return gorm.ErrDuplicatedKey
	}

	_, err := f.usecase().CreateAppointment(context.Background(), f.clinicID, f.userID, &dto.CreateAppointmentRequest{
		DoctorID:  f.doctorID,
		PatientID: f.patientID,
		Date:      "2026-03-02",
		Time:      "09:00:00",
		Procedure: "limpeza",
	})

	assert.ErrorIs(t, err, ErrTimeNotAvailable)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.audit.RecordCallCount))
}

func TestCreateAppointment_InvalidTime(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.usecase().CreateAppointment(context.Background(), f.clinicID, f.userID, &dto.CreateAppointmentRequest{
		DoctorID:  f.doctorID,
		PatientID: f.patientID,
		Date:      "2026-03-02",
		Time:      "9h00",
		Procedure: "limpeza",
	})

	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestUpdateAppointment_KeepsOwnSlot(t *testing.T) {
	f := newAppointmentFixture()
	existing := entity.Appointment{
		ID:                  uuid.New(),
		ClinicID:            f.clinicID,
		DoctorID:            f.doctorID,
		PatientID:           f.patientID,
		AppointmentDateTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Status:              entity.AppointmentStatusScheduled,
		Procedure:           "avaliacao",
	}
	f.appointmentRepo.FindByIDAndClinicFunc = func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error) {
		copied := existing
		return &copied, nil
	}
	f.appointmentRepo.FindByDoctorAndClinicFunc = func(db *gorm.DB, doctorID, clinicID uuid.UUID) ([]entity.Appointment, error) {
		return []entity.Appointment{existing}, nil
	}
	f.appointmentRepo.UpdateFunc = func(db *gorm.DB, appointment *entity.Appointment) error {
		return nil
	}

	resp, err := f.usecase().UpdateAppointment(context.Background(), f.clinicID, f.userID, existing.ID, &dto.UpdateAppointmentRequest{
		Procedure: "restauracao",
	})

	assert.NoError(t, err)
	assert.Equal(t, "restauracao", resp.Procedure)
	assert.Equal(t, existing.AppointmentDateTime, resp.AppointmentDateTime, "keeping the current slot is always accepted")
}

func TestUpdateAppointment_Cancelled(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.FindByIDAndClinicFunc = func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, Status: entity.AppointmentStatusCancelled}, nil
	}

	_, err := f.usecase().UpdateAppointment(context.Background(), f.clinicID, f.userID, uuid.New(), &dto.UpdateAppointmentRequest{
		Procedure: "restauracao",
	})

	assert.ErrorIs(t, err, ErrAppointmentCancelled)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.FindByIDAndClinicFunc = func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error) {
		return nil, nil
	}

	_, err := f.usecase().UpdateAppointment(context.Background(), f.clinicID, f.userID, uuid.New(), &dto.UpdateAppointmentRequest{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newAppointmentFixture()

	var gotStatus entity.AppointmentStatus
	var gotAction string
	f.appointmentRepo.UpdateStatusFunc = func(db *gorm.DB, id, clinicID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
		gotStatus = status
		return 1, nil
	}
	f.audit.RecordFunc = func(clinicID uuid.UUID, userID *uuid.UUID, action, entityName, entityID string, metadata entity.JSON) {
		gotAction = action
	}

	err := f.usecase().UpdateStatus(context.Background(), f.clinicID, f.userID, uuid.New(), "cancelled")
	assert.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, gotStatus)
	assert.Equal(t, entity.AuditActionAppointmentCancel, gotAction)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.UpdateStatusFunc = func(db *gorm.DB, id, clinicID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
		return 0, nil
	}

	err := f.usecase().UpdateStatus(context.Background(), f.clinicID, f.userID, uuid.New(), "attended")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetAppointmentsByDay(t *testing.T) {
	f := newAppointmentFixture()

	var gotStart, gotEnd string
	f.appointmentRepo.FindByClinicAndDayFunc = func(db *gorm.DB, clinicID uuid.UUID, dayStart, dayEnd string) ([]entity.Appointment, error) {
		gotStart, gotEnd = dayStart, dayEnd
		return []entity.Appointment{
			{ID: uuid.New(), AppointmentDateTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), AppointmentDateTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
		}, nil
	}

	resp, err := f.usecase().GetAppointmentsByDay(context.Background(), f.clinicID, "2026-03-02", uuid.Nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "2026-03-02 00:00:00", gotStart)
	assert.Equal(t, "2026-03-03 00:00:00", gotEnd)
}

func TestGetAppointmentsByDay_FilterByDoctor(t *testing.T) {
	f := newAppointmentFixture()
	otherDoctor := uuid.New()

	f.appointmentRepo.FindByClinicAndDayFunc = func(db *gorm.DB, clinicID uuid.UUID, dayStart, dayEnd string) ([]entity.Appointment, error) {
		return []entity.Appointment{
			{ID: uuid.New(), DoctorID: f.doctorID},
			{ID: uuid.New(), DoctorID: otherDoctor},
			{ID: uuid.New(), DoctorID: f.doctorID},
		}, nil
	}

	resp, err := f.usecase().GetAppointmentsByDay(context.Background(), f.clinicID, "2026-03-02", f.doctorID)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	for _, a := range resp.Appointments {
		assert.Equal(t, f.doctorID, a.DoctorID)
	}
}

func TestGetAppointmentsByDay_InvalidDate(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.usecase().GetAppointmentsByDay(context.Background(), f.clinicID, "yesterday", uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
