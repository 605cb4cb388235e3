package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnamnesisStatus tells whether a record can still be corrected in place.
type AnamnesisStatus string

const (
	AnamnesisStatusDraft     AnamnesisStatus = "draft"
	AnamnesisStatusFinalized AnamnesisStatus = "finalized"
)

// Anamnesis is one link of a patient's clinical history chain. Versions are
// strictly increasing per patient starting at 1; a unique index on
// (patient_id, version) guards concurrent version creation. Updating an
// existing row by id is a draft correction and never bumps the version.
type Anamnesis struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	ClinicID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"clinic_id"`
	CreatedBy         uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	Version           int             `gorm:"not null" json:"version"`
	PreviousVersionID *uuid.UUID      `gorm:"type:uuid" json:"previous_version_id,omitempty"`
	Status            AnamnesisStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Summary           string          `gorm:"type:text" json:"summary"`
	Data              JSON            `gorm:"type:jsonb;not null" json:"data"`
	Attachments       JSONList        `gorm:"type:jsonb" json:"attachments,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Creator User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Anamnesis) TableName() string {
	return "anamneses"
}

// IsDraft checks if the record is still editable in place.
func (a *Anamnesis) IsDraft() bool {
	return a.Status == AnamnesisStatusDraft
}

// Finalize marks the record immutable, done when a newer version supersedes it.
func (a *Anamnesis) Finalize() {
	a.Status = AnamnesisStatusFinalized
}

// LinkAfter places the record at the end of the chain: version 1 when the
// chain is empty, otherwise one past latest with the predecessor linked.
func (a *Anamnesis) LinkAfter(latest *Anamnesis) {
	if latest == nil {
		a.Version = 1
		a.PreviousVersionID = nil
		return
	}
	a.Version = latest.Version + 1
	a.PreviousVersionID = &latest.ID
}
