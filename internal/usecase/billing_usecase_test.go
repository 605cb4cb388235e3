package usecase

import (
	"context"
	"errors"
	"testing"

	"dental-clinic-service/config"
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var _ service.PaymentGateway = (*mockPaymentGateway)(nil)

type mockPaymentGateway struct {
	CreateCheckoutSessionFunc func(ctx context.Context, customerEmail, priceID string) (string, error)
	UpdateSubscriptionFunc    func(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) error
}

func (m *mockPaymentGateway) CreateCheckoutSession(ctx context.Context, customerEmail, priceID string) (string, error) {
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, customerEmail, priceID)
	}
	return "", errors.New("CreateCheckoutSessionFunc not implemented in mock")
}

func (m *mockPaymentGateway) UpdateSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) error {
	if m.UpdateSubscriptionFunc != nil {
		return m.UpdateSubscriptionFunc(ctx, subscriptionID, cancelAtPeriodEnd)
	}
	return errors.New("UpdateSubscriptionFunc not implemented in mock")
}

type billingFixture struct {
	clinicID   uuid.UUID
	clinic     *entity.Clinic
	clinicRepo *MockClinicRepository
	gateway    *mockPaymentGateway
}

func newBillingFixture() *billingFixture {
	f := &billingFixture{
		clinicID: uuid.New(),
		gateway:  &mockPaymentGateway{},
	}
	f.clinic = &entity.Clinic{
		ID:                     f.clinicID,
		Name:                   "Clínica Sorriso",
		Email:                  "contato@sorriso.com",
		Plan:                   entity.PlanBasic,
		ProviderSubscriptionID: "sub_123",
	}
	f.clinicRepo = &MockClinicRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
			if id == f.clinicID {
				return f.clinic, nil
			}
			return nil, nil
		},
		UpdateFunc: func(db *gorm.DB, clinic *entity.Clinic) error {
			return nil
		},
	}
	return f
}

func (f *billingFixture) usecase() BillingUsecase {
	cfg := config.PaymentConfig{BasicPriceID: "price_basic", ProPriceID: "price_pro"}
	return NewBillingUsecase(testDB(), testLogger(), cfg, f.clinicRepo, f.gateway)
}

func TestCreateCheckout(t *testing.T) {
	f := newBillingFixture()

	var gotEmail, gotPrice string
	f.gateway.CreateCheckoutSessionFunc = func(ctx context.Context, customerEmail, priceID string) (string, error) {
		gotEmail, gotPrice = customerEmail, priceID
		return "https://checkout.example.com/session/abc", nil
	}

	resp, err := f.usecase().CreateCheckout(context.Background(), f.clinicID, &dto.CheckoutRequest{Plan: "pro"})
	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/session/abc", resp.URL)
	assert.Equal(t, "contato@sorriso.com", gotEmail)
	assert.Equal(t, "price_pro", gotPrice)

	_, err = f.usecase().CreateCheckout(context.Background(), f.clinicID, &dto.CheckoutRequest{Plan: "basic"})
	assert.NoError(t, err)
	assert.Equal(t, "price_basic", gotPrice)
}

func TestCreateCheckout_ClinicNotFound(t *testing.T) {
	f := newBillingFixture()

	_, err := f.usecase().CreateCheckout(context.Background(), uuid.New(), &dto.CheckoutRequest{Plan: "basic"})
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestCancelSubscription(t *testing.T) {
	f := newBillingFixture()

	var gotSubscriptionID string
	var gotCancel bool
	f.gateway.UpdateSubscriptionFunc = func(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) error {
		gotSubscriptionID = subscriptionID
		gotCancel = cancelAtPeriodEnd
		return nil
	}

	resp, err := f.usecase().CancelSubscription(context.Background(), f.clinicID)
	assert.NoError(t, err)
	assert.True(t, resp.CancelAtPeriodEnd)
	assert.Equal(t, "sub_123", gotSubscriptionID)
	assert.True(t, gotCancel)
}

func TestCancelSubscription_ProviderFailureLeavesFlagUntouched(t *testing.T) {
	f := newBillingFixture()
	f.gateway.UpdateSubscriptionFunc = func(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) error {
		return errors.New("provider unavailable")
	}

	updateCalled := false
	f.clinicRepo.UpdateFunc = func(db *gorm.DB, clinic *entity.Clinic) error {
		updateCalled = true
		return nil
	}

	_, err := f.usecase().CancelSubscription(context.Background(), f.clinicID)
	assert.Error(t, err)
	assert.False(t, updateCalled, "the local row must not claim a state the provider does not hold")
	assert.False(t, f.clinic.CancelAtPeriodEnd)
}

func TestCancelSubscription_Guards(t *testing.T) {
	f := newBillingFixture()
	f.clinic.ProviderSubscriptionID = ""

	_, err := f.usecase().CancelSubscription(context.Background(), f.clinicID)
	assert.ErrorIs(t, err, ErrNoSubscription)

	f.clinic.ProviderSubscriptionID = "sub_123"
	f.clinic.CancelAtPeriodEnd = true
	_, err = f.usecase().CancelSubscription(context.Background(), f.clinicID)
	assert.ErrorIs(t, err, ErrCancelAlreadySet)
}

func TestResumeSubscription(t *testing.T) {
	f := newBillingFixture()
	f.clinic.CancelAtPeriodEnd = true

	f.gateway.UpdateSubscriptionFunc = func(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) error {
		return nil
	}

	resp, err := f.usecase().ResumeSubscription(context.Background(), f.clinicID)
	assert.NoError(t, err)
	assert.False(t, resp.CancelAtPeriodEnd)
}

func TestResumeSubscription_NotFlagged(t *testing.T) {
	f := newBillingFixture()

	_, err := f.usecase().ResumeSubscription(context.Background(), f.clinicID)
	assert.ErrorIs(t, err, ErrSubscriptionActive)
}
