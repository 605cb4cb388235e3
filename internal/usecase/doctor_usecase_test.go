package usecase

import (
	"context"
	"testing"

	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"valid window", "08:00:00", "18:00:00", nil},
		{"inverted window", "18:00:00", "08:00:00", ErrInvalidTimeWindow},
		{"zero-width window", "08:00:00", "08:00:00", ErrInvalidTimeWindow},
		{"malformed from", "8h00", "18:00:00", ErrInvalidTimeWindow},
		{"malformed to", "08:00:00", "18:00", ErrInvalidTimeWindow},
		{"empty bounds", "", "", ErrInvalidTimeWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWindow(tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGetDoctor(t *testing.T) {
	clinicID := uuid.New()
	doctorID := uuid.New()
	active := true

	doctorRepo := &MockDoctorProfileRepository{
		FindByUserAndClinicFunc: func(db *gorm.DB, userID, cID uuid.UUID) (*entity.DoctorProfile, error) {
			if userID == doctorID && cID == clinicID {
				return &entity.DoctorProfile{
					UserID:            doctorID,
					ClinicID:          clinicID,
					CRONumber:         "SP-12345",
					Specialty:         "ortodontia",
					AvailableWeekDays: entity.WeekDaySet{1, 3, 5},
					AvailableFromTime: "08:00:00",
					AvailableToTime:   "17:00:00",
					User: entity.User{
						ID:       doctorID,
						Email:    "dra.ana@clinica.com",
						FullName: "Dra. Ana Lima",
						IsActive: &active,
					},
				}, nil
			}
			return nil, nil
		},
	}

	uc := NewDoctorUsecase(testDB(), testLogger(), &MockUserRepository{}, doctorRepo, &MockAuditRecorder{})

	resp, err := uc.GetDoctor(context.Background(), clinicID, doctorID)
	assert.NoError(t, err)
	assert.Equal(t, doctorID, resp.ID)
	assert.Equal(t, "SP-12345", resp.CRONumber)
	assert.Equal(t, "Dra. Ana Lima", resp.FullName)
	assert.True(t, resp.IsActive)

	_, err = uc.GetDoctor(context.Background(), clinicID, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestListDoctors(t *testing.T) {
	clinicID := uuid.New()
	doctorRepo := &MockDoctorProfileRepository{
		FindByClinicFunc: func(db *gorm.DB, cID uuid.UUID) ([]entity.DoctorProfile, error) {
			return []entity.DoctorProfile{
				{UserID: uuid.New(), ClinicID: cID, CRONumber: "SP-11111"},
				{UserID: uuid.New(), ClinicID: cID, CRONumber: "SP-22222"},
			}, nil
		},
	}

	uc := NewDoctorUsecase(testDB(), testLogger(), &MockUserRepository{}, doctorRepo, &MockAuditRecorder{})

	resp, err := uc.ListDoctors(context.Background(), clinicID)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Doctors, 2)
}

func TestDeactivateDoctor(t *testing.T) {
	clinicID := uuid.New()
	doctorID := uuid.New()
	active := true
	user := &entity.User{ID: doctorID, IsActive: &active}

	doctorRepo := &MockDoctorProfileRepository{
		FindByUserAndClinicFunc: func(db *gorm.DB, userID, cID uuid.UUID) (*entity.DoctorProfile, error) {
			return &entity.DoctorProfile{UserID: doctorID, ClinicID: clinicID}, nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
		UpdateFunc: func(db *gorm.DB, u *entity.User) error {
			return nil
		},
	}

	uc := NewDoctorUsecase(testDB(), testLogger(), userRepo, doctorRepo, &MockAuditRecorder{})

	err := uc.DeactivateDoctor(context.Background(), clinicID, doctorID)
	assert.NoError(t, err)
	assert.NotNil(t, user.IsActive)
	assert.False(t, *user.IsActive)
}
