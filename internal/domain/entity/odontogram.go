package entity

import (
	"time"

	"github.com/google/uuid"
)

// Odontogram is a dated snapshot of a patient's dental chart. Every POST
// creates a brand-new snapshot; history is append-only keyed by date.
type Odontogram struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor DoctorProfile   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Teeth  []OdontogramTooth `gorm:"foreignKey:OdontogramID" json:"teeth,omitempty"`
}

func (Odontogram) TableName() string {
	return "odontograms"
}

// OdontogramTooth is a per-tooth mark owned by a snapshot.
type OdontogramTooth struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OdontogramID uuid.UUID `gorm:"type:uuid;not null;index" json:"odontogram_id"`
	ToothNumber  int       `gorm:"not null" json:"tooth_number"`
	Face         string    `gorm:"type:varchar(20)" json:"face,omitempty"`
	Status       string    `gorm:"type:varchar(50);not null" json:"status"`
	Observation  string    `gorm:"type:text" json:"observation,omitempty"`
}

func (OdontogramTooth) TableName() string {
	return "odontogram_teeth"
}
