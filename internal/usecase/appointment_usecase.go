package usecase

import (
	"context"
	"errors"
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

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrTimeNotAvailable     = errors.New("time not available")
	ErrInvalidTime          = errors.New("invalid time format, use HH:MM:SS")
	ErrAppointmentCancelled = errors.New("appointment is already cancelled")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, clinicID, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, clinicID, userID uuid.UUID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, clinicID, userID uuid.UUID, appointmentID uuid.UUID, status string) error
	// GetAppointmentsByDay lists the clinic's agenda for a calendar day,
	// optionally narrowed to one doctor (uuid.Nil means no filter).
	GetAppointmentsByDay(ctx context.Context, clinicID uuid.UUID, date string, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	availability    AvailabilityUsecase
	audit           service.AuditRecorder
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	availability AvailabilityUsecase,
	audit service.AuditRecorder,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		availability:    availability,
		audit:           audit,
	}
}

// CreateAppointment books a slot after re-verifying availability. The
// partial unique index on (clinic, doctor, datetime) backstops the check:
// a concurrent booking that slips past it surfaces as ErrTimeNotAvailable
// instead of a silent double-booking.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, clinicID, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByIDAndClinic(db, req.PatientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dateTime, err := parseSlotDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	available, err := u.availability.IsSlotAvailable(ctx, clinicID, req.DoctorID, dateTime, req.Time, "")
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrTimeNotAvailable
	}

	appointment := &entity.Appointment{
		ClinicID:            clinicID,
		DoctorID:            req.DoctorID,
		PatientID:           req.PatientID,
		AppointmentDateTime: dateTime,
		Status:              entity.AppointmentStatusScheduled,
		Procedure:           req.Procedure,
		Notes:               req.Notes,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTimeNotAvailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.Record(clinicID, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"doctor_id":  req.DoctorID.String(),
		"patient_id": req.PatientID.String(),
		"datetime":   dateTime.Format(time.RFC3339),
	})

	full, err := u.appointmentRepo.FindByIDAndClinic(db, appointment.ID, clinicID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// UpdateAppointment reschedules or edits a booking. The availability
// re-check excludes the appointment itself, so keeping the current slot is
// always accepted.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, clinicID, userID uuid.UUID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByIDAndClinic(db, appointmentID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	doctorID := appointment.DoctorID
	if req.DoctorID != uuid.Nil {
		doctorID = req.DoctorID
	}

	date := appointment.AppointmentDateTime.UTC().Format("2006-01-02")
	if req.Date != "" {
		date = req.Date
	}
	timeOfDay := appointment.TimeOfDay()
	if req.Time != "" {
		timeOfDay = req.Time
	}

	dateTime, err := parseSlotDateTime(date, timeOfDay)
	if err != nil {
		return nil, err
	}

	available, err := u.availability.IsSlotAvailable(ctx, clinicID, doctorID, dateTime, timeOfDay, appointment.ID.String())
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrTimeNotAvailable
	}

	appointment.DoctorID = doctorID
	appointment.AppointmentDateTime = dateTime
	if req.Procedure != "" {
		appointment.Procedure = req.Procedure
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTimeNotAvailable
		}
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.audit.Record(clinicID, &userID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), entity.JSON{
		"datetime": dateTime.Format(time.RFC3339),
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, clinicID, userID uuid.UUID, appointmentID uuid.UUID, status string) error {
	db := u.db.WithContext(ctx)

	affected, err := u.appointmentRepo.UpdateStatus(db, appointmentID, clinicID, entity.AppointmentStatus(status))
	if err != nil {
		u.log.Warnf("Failed to update appointment status %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	action := entity.AuditActionAppointmentUpdate
	if entity.AppointmentStatus(status) == entity.AppointmentStatusCancelled {
		action = entity.AuditActionAppointmentCancel
	}
	u.audit.Record(clinicID, &userID, action, "appointment", appointmentID.String(), entity.JSON{
		"status": status,
	})

	return nil
}

func (u *appointmentUsecase) GetAppointmentsByDay(ctx context.Context, clinicID uuid.UUID, date string, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dayStart := day.Format("2006-01-02 00:00:00")
	dayEnd := day.AddDate(0, 0, 1).Format("2006-01-02 00:00:00")

	appointments, err := u.appointmentRepo.FindByClinicAndDay(u.db.WithContext(ctx), clinicID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to list appointments for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	if doctorID != uuid.Nil {
		filtered := appointments[:0]
		for _, a := range appointments {
			if a.DoctorID == doctorID {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func parseSlotDateTime(date, timeOfDay string) (time.Time, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if _, err := time.Parse("15:04:05", timeOfDay); err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return time.Parse("2006-01-02 15:04:05", date+" "+timeOfDay)
}
