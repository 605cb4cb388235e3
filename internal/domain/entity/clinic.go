package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan identifies the subscription tier of a clinic.
type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

// Clinic is the tenant root. Every clinical and financial row belongs to
// exactly one clinic, and every query is scoped by clinic id.
type Clinic struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                   string    `gorm:"type:varchar(255);not null" json:"name"`
	Email                  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone                  string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Plan                   Plan      `gorm:"type:varchar(20);not null;default:'basic'" json:"plan"`
	ProviderCustomerID     string    `gorm:"type:varchar(100);index" json:"-"`
	ProviderSubscriptionID string    `gorm:"type:varchar(100);index" json:"-"`
	CancelAtPeriodEnd      bool      `gorm:"not null;default:false" json:"cancel_at_period_end"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Users    []User    `gorm:"foreignKey:ClinicID" json:"users,omitempty"`
	Patients []Patient `gorm:"foreignKey:ClinicID" json:"patients,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}

// HasActiveSubscription reports whether the clinic holds a provider
// subscription that is not flagged for cancellation.
func (c *Clinic) HasActiveSubscription() bool {
	return c.ProviderSubscriptionID != "" && !c.CancelAtPeriodEnd
}
