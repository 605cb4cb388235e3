package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a clinic patient record.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID    uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	CPF         string    `gorm:"type:char(11);index" json:"cpf,omitempty"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`
	Sex         string    `gorm:"type:char(1)" json:"sex,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	State       string    `gorm:"type:char(2)" json:"state,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic       Clinic        `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Anamneses    []Anamnesis   `gorm:"foreignKey:PatientID" json:"anamneses,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
)
