package usecase

import (
	"context"
	"errors"

	"dental-clinic-service/internal/converter"
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeUsecase interface {
	CreateEmployee(ctx context.Context, clinicID uuid.UUID, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetEmployee(ctx context.Context, clinicID, employeeID uuid.UUID) (*dto.EmployeeResponse, error)
	ListEmployees(ctx context.Context, clinicID uuid.UUID) (*dto.EmployeeListResponse, error)
	UpdateEmployee(ctx context.Context, clinicID, employeeID uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	DeactivateEmployee(ctx context.Context, clinicID, employeeID uuid.UUID) error
}

type employeeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeProfileRepository
}

func NewEmployeeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeProfileRepository,
) EmployeeUsecase {
	return &employeeUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
	}
}

func (u *employeeUsecase) CreateEmployee(ctx context.Context, clinicID uuid.UUID, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
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
		RoleID:   entity.RoleIDEmployee,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		IsActive: &active,
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create employee user: %+v", err)
		return nil, err
	}

	profile := &entity.EmployeeProfile{
		UserID:      user.ID,
		ClinicID:    clinicID,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
	}
	if err := u.employeeRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create employee profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.EmployeeToResponse(profile), nil
}

func (u *employeeUsecase) GetEmployee(ctx context.Context, clinicID, employeeID uuid.UUID) (*dto.EmployeeResponse, error) {
	profile, err := u.employeeRepo.FindByUserAndClinic(u.db.WithContext(ctx), employeeID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find employee %s: %+v", employeeID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrEmployeeNotFound
	}
	return converter.EmployeeToResponse(profile), nil
}

func (u *employeeUsecase) ListEmployees(ctx context.Context, clinicID uuid.UUID) (*dto.EmployeeListResponse, error) {
	profiles, err := u.employeeRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list employees: %+v", err)
		return nil, err
	}
	return &dto.EmployeeListResponse{
		Employees: converter.EmployeesToResponses(profiles),
		Total:     len(profiles),
	}, nil
}

func (u *employeeUsecase) UpdateEmployee(ctx context.Context, clinicID, employeeID uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.employeeRepo.FindByUserAndClinic(tx, employeeID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find employee %s: %+v", employeeID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrEmployeeNotFound
	}

	if req.Role != "" {
		profile.Role = req.Role
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if err := u.employeeRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update employee profile %s: %+v", employeeID, err)
		return nil, err
	}

	if req.FullName != "" {
		user, err := u.userRepo.FindByID(tx, employeeID)
		if err != nil {
			u.log.Warnf("Failed to find user %s: %+v", employeeID, err)
			return nil, err
		}
		if user == nil {
			return nil, ErrEmployeeNotFound
		}
		user.FullName = req.FullName
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user %s: %+v", employeeID, err)
			return nil, err
		}
		profile.User = *user
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.EmployeeToResponse(profile), nil
}

func (u *employeeUsecase) DeactivateEmployee(ctx context.Context, clinicID, employeeID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	profile, err := u.employeeRepo.FindByUserAndClinic(db, employeeID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find employee %s: %+v", employeeID, err)
		return err
	}
	if profile == nil {
		return ErrEmployeeNotFound
	}

	user, err := u.userRepo.FindByID(db, employeeID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", employeeID, err)
		return err
	}
	if user == nil {
		return ErrEmployeeNotFound
	}

	inactive := false
	user.IsActive = &inactive
	if err := u.userRepo.Update(db, user); err != nil {
		u.log.Warnf("Failed to deactivate employee %s: %+v", employeeID, err)
		return err
	}
	return nil
}
