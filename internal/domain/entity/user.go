package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table. Doctors and
// employees hang profile rows off their user record.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic          Clinic           `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	DoctorProfile   *DoctorProfile   `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	EmployeeProfile *EmployeeProfile `gorm:"foreignKey:UserID" json:"employee_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDDoctor   = 2
	RoleIDEmployee = 3
)
