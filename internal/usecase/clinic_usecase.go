package usecase

import (
	"context"
	"errors"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrClinicNotFound = errors.New("clinic not found")

type ClinicUsecase interface {
	GetClinic(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
	UpdateClinic(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
}

type clinicUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clinicRepo repository.ClinicRepository
}

func NewClinicUsecase(db *gorm.DB, log *logrus.Logger, clinicRepo repository.ClinicRepository) ClinicUsecase {
	return &clinicUsecase{
		db:         db,
		log:        log,
		clinicRepo: clinicRepo,
	}
}

func (u *clinicUsecase) GetClinic(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return &dto.ClinicResponse{
		ID:                clinic.ID,
		Name:              clinic.Name,
		Email:             clinic.Email,
		Phone:             clinic.Phone,
		Plan:              string(clinic.Plan),
		CancelAtPeriodEnd: clinic.CancelAtPeriodEnd,
		CreatedAt:         clinic.CreatedAt,
		UpdatedAt:         clinic.UpdatedAt,
	}, nil
}

func (u *clinicUsecase) UpdateClinic(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.clinicRepo.FindByID(db, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	if req.Name != "" {
		clinic.Name = req.Name
	}
	if req.Phone != "" {
		clinic.Phone = req.Phone
	}

	if err := u.clinicRepo.Update(db, clinic); err != nil {
		u.log.Warnf("Failed to update clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return &dto.ClinicResponse{
		ID:                clinic.ID,
		Name:              clinic.Name,
		Email:             clinic.Email,
		Phone:             clinic.Phone,
		Plan:              string(clinic.Plan),
		CancelAtPeriodEnd: clinic.CancelAtPeriodEnd,
		CreatedAt:         clinic.CreatedAt,
		UpdatedAt:         clinic.UpdatedAt,
	}, nil
}
