package entity

import "github.com/google/uuid"

// EmployeeProfile holds non-clinical staff data of a clinic user.
type EmployeeProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ClinicID    uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Role        string    `gorm:"type:varchar(50);not null" json:"role"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}
