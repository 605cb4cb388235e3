package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/repository"
	"dental-clinic-service/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidDate    = errors.New("invalid date format, use YYYY-MM-DD")
)

// AvailabilityUsecase computes the slot list of a doctor's day. It serves
// the read endpoint and doubles as the pre-check of the appointment write
// path, which passes the id of the appointment under edit so its own slot
// stays bookable.
type AvailabilityUsecase interface {
	GetDoctorAvailability(ctx context.Context, clinicID, doctorID uuid.UUID, date string, excludeAppointmentID string) (*dto.AvailabilityResponse, error)
	// IsSlotAvailable reports whether timeOfDay (HH:MM:SS) is bookable for
	// the doctor on the date.
	IsSlotAvailable(ctx context.Context, clinicID, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeAppointmentID string) (bool, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *availabilityUsecase) GetDoctorAvailability(ctx context.Context, clinicID, doctorID uuid.UUID, date string, excludeAppointmentID string) (*dto.AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	slots, err := u.buildSlots(ctx, clinicID, doctorID, day, excludeAppointmentID)
	if err != nil {
		return nil, err
	}

	return &dto.AvailabilityResponse{
		DoctorID: doctorID.String(),
		Date:     date,
		Slots:    slots,
	}, nil
}

func (u *availabilityUsecase) IsSlotAvailable(ctx context.Context, clinicID, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeAppointmentID string) (bool, error) {
	slots, err := u.buildSlots(ctx, clinicID, doctorID, date, excludeAppointmentID)
	if err != nil {
		return false, err
	}

	for _, slot := range slots {
		if slot.Value == timeOfDay {
			return slot.Available, nil
		}
	}
	return false, nil
}

func (u *availabilityUsecase) buildSlots(ctx context.Context, clinicID, doctorID uuid.UUID, date time.Time, excludeAppointmentID string) ([]scheduling.TimeSlot, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserAndClinic(db, doctorID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsBookable() {
		return nil, ErrDoctorNotFound
	}

	// The query is scoped to clinic+doctor only; the same-day cut happens
	// in memory to sidestep timezone-boundary range predicates. Per-doctor
	// daily volume is small, so the extra rows are cheap.
	appointments, err := u.appointmentRepo.FindByDoctorAndClinic(db, doctorID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return scheduling.BuildSlots(doctor, date, appointments, excludeAppointmentID), nil
}
