package usecase

import (
	"context"
	"errors"

	"dental-clinic-service/config"
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/domain/repository"
	"dental-clinic-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNoSubscription     = errors.New("clinic has no active subscription")
	ErrSubscriptionActive = errors.New("subscription is not flagged for cancellation")
	ErrCancelAlreadySet   = errors.New("subscription is already flagged for cancellation")
)

// BillingUsecase orchestrates the clinic's subscription lifecycle against
// the payment provider. Plan changes triggered by provider webhooks are not
// handled here; the clinic row only tracks the cancel-at-period-end flag
// and the provider ids.
type BillingUsecase interface {
	CreateCheckout(ctx context.Context, clinicID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	CancelSubscription(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
	ResumeSubscription(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
}

type billingUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	cfg        config.PaymentConfig
	clinicRepo repository.ClinicRepository
	gateway    service.PaymentGateway
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.PaymentConfig,
	clinicRepo repository.ClinicRepository,
	gateway service.PaymentGateway,
) BillingUsecase {
	return &billingUsecase{
		db:         db,
		log:        log,
		cfg:        cfg,
		clinicRepo: clinicRepo,
		gateway:    gateway,
	}
}

func (u *billingUsecase) CreateCheckout(ctx context.Context, clinicID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	priceID := u.cfg.BasicPriceID
	if req.Plan == string(entity.PlanPro) {
		priceID = u.cfg.ProPriceID
	}

	url, err := u.gateway.CreateCheckoutSession(ctx, clinic.Email, priceID)
	if err != nil {
		u.log.Warnf("Failed to create checkout session for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return &dto.CheckoutResponse{URL: url}, nil
}

func (u *billingUsecase) CancelSubscription(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	return u.setCancelFlag(ctx, clinicID, true)
}

func (u *billingUsecase) ResumeSubscription(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	return u.setCancelFlag(ctx, clinicID, false)
}

// setCancelFlag updates the provider first and persists the flag only after
// the provider acknowledged, so the local row never claims a state the
// provider does not hold.
func (u *billingUsecase) setCancelFlag(ctx context.Context, clinicID uuid.UUID, cancel bool) (*dto.ClinicResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.clinicRepo.FindByID(db, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	if clinic.ProviderSubscriptionID == "" {
		return nil, ErrNoSubscription
	}
	if cancel && clinic.CancelAtPeriodEnd {
		return nil, ErrCancelAlreadySet
	}
	if !cancel && !clinic.CancelAtPeriodEnd {
		return nil, ErrSubscriptionActive
	}

	if err := u.gateway.UpdateSubscription(ctx, clinic.ProviderSubscriptionID, cancel); err != nil {
		u.log.Warnf("Failed to update subscription for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	clinic.CancelAtPeriodEnd = cancel
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
