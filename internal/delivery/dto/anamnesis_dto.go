package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentDTO mirrors one entry of the anamnesis attachments list.
type AttachmentDTO struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// UpsertAnamnesisRequest creates a new version when ID is absent and
// corrects the addressed row in place when ID is present.
type UpsertAnamnesisRequest struct {
	ID              *uuid.UUID             `json:"id" validate:"omitempty"`
	ChiefComplaint  string                 `json:"chief_complaint" validate:"omitempty"`
	KnownConditions []string               `json:"known_conditions" validate:"omitempty"`
	Allergies       []string               `json:"allergies" validate:"omitempty"`
	Medications     []string               `json:"medications" validate:"omitempty"`
	Answers         map[string]interface{} `json:"answers" validate:"omitempty"`
	Attachments     []AttachmentDTO        `json:"attachments" validate:"omitempty,dive"`
}

// Response DTOs

type AnamnesisCreatorResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type AnamnesisResponse struct {
	ID                uuid.UUID                `json:"id"`
	PatientID         uuid.UUID                `json:"patient_id"`
	Version           int                      `json:"version"`
	PreviousVersionID *uuid.UUID               `json:"previous_version_id,omitempty"`
	Status            string                   `json:"status"`
	Summary           string                   `json:"summary"`
	Data              map[string]interface{}   `json:"data"`
	Attachments       []map[string]interface{} `json:"attachments,omitempty"`
	Creator           AnamnesisCreatorResponse `json:"creator"`
	CreatedAt         time.Time                `json:"created_at"`
}

type AnamnesisListResponse struct {
	Records []AnamnesisResponse `json:"records"`
	Total   int                 `json:"total"`
}
