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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrCROAlreadyExists  = errors.New("cro number already registered")
	ErrInvalidTimeWindow = errors.New("invalid availability window")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, clinicID, actorID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, clinicID, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, clinicID uuid.UUID) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, clinicID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeactivateDoctor(ctx context.Context, clinicID, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorProfileRepository
	audit      service.AuditRecorder
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	audit service.AuditRecorder,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		audit:      audit,
	}
}

// validateWindow enforces that both bounds are well-formed HH:MM:SS values
// and that the window opens before it closes.
func validateWindow(from, to string) error {
	if _, err := time.Parse("15:04:05", from); err != nil {
		return ErrInvalidTimeWindow
	}
	if _, err := time.Parse("15:04:05", to); err != nil {
		return ErrInvalidTimeWindow
	}
	if from >= to {
		return ErrInvalidTimeWindow
	}
	return nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, clinicID, actorID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := validateWindow(req.AvailableFromTime, req.AvailableToTime); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		ClinicID: clinicID,
		RoleID:   entity.RoleIDDoctor,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		IsActive: &active,
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:            user.ID,
		ClinicID:          clinicID,
		CRONumber:         req.CRONumber,
		Specialty:         req.Specialty,
		AvailableWeekDays: req.AvailableWeekDays,
		AvailableFromTime: req.AvailableFromTime,
		AvailableToTime:   req.AvailableToTime,
	}
	if err := u.doctorRepo.Create(tx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCROAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit.Record(clinicID, &actorID, entity.AuditActionDoctorUpsert, "doctor", user.ID.String(), entity.JSON{
		"specialty": profile.Specialty,
	})

	profile.User = *user
	return converter.DoctorToResponse(profile), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, clinicID, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserAndClinic(u.db.WithContext(ctx), doctorID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(profile), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, clinicID uuid.UUID) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, clinicID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.doctorRepo.FindByUserAndClinic(db, doctorID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialty != "" {
		profile.Specialty = req.Specialty
	}
	if len(req.AvailableWeekDays) > 0 {
		profile.AvailableWeekDays = req.AvailableWeekDays
	}
	if req.AvailableFromTime != "" {
		profile.AvailableFromTime = req.AvailableFromTime
	}
	if req.AvailableToTime != "" {
		profile.AvailableToTime = req.AvailableToTime
	}
	if err := validateWindow(profile.AvailableFromTime, profile.AvailableToTime); err != nil {
		return nil, err
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile %s: %+v", doctorID, err)
		return nil, err
	}

	if req.FullName != "" {
		user, err := u.userRepo.FindByID(tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find user %s: %+v", doctorID, err)
			return nil, err
		}
		if user == nil {
			return nil, ErrDoctorNotFound
		}
		user.FullName = req.FullName
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user %s: %+v", doctorID, err)
			return nil, err
		}
		profile.User = *user
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(profile), nil
}

// DeactivateDoctor soft-disables the user account. Historical appointments
// keep pointing at the profile; the availability resolver treats the doctor
// as not found from then on, so no further slots can be read or booked.
func (u *doctorUsecase) DeactivateDoctor(ctx context.Context, clinicID, doctorID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	profile, err := u.doctorRepo.FindByUserAndClinic(db, doctorID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	user, err := u.userRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", doctorID, err)
		return err
	}
	if user == nil {
		return ErrDoctorNotFound
	}

	inactive := false
	user.IsActive = &inactive
	if err := u.userRepo.Update(db, user); err != nil {
		u.log.Warnf("Failed to deactivate doctor %s: %+v", doctorID, err)
		return err
	}
	return nil
}
