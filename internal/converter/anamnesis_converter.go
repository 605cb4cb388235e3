package converter

import (
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
)

// AnamnesisToResponse converts an Anamnesis entity to AnamnesisResponse DTO.
// The creator is projected down to id and name only.
func AnamnesisToResponse(record *entity.Anamnesis) *dto.AnamnesisResponse {
	if record == nil {
		return nil
	}

	return &dto.AnamnesisResponse{
		ID:                record.ID,
		PatientID:         record.PatientID,
		Version:           record.Version,
		PreviousVersionID: record.PreviousVersionID,
		Status:            string(record.Status),
		Summary:           record.Summary,
		Data:              record.Data,
		Attachments:       record.Attachments,
		Creator: dto.AnamnesisCreatorResponse{
			ID:       record.CreatedBy,
			FullName: record.Creator.FullName,
		},
		CreatedAt: record.CreatedAt,
	}
}

// AnamnesesToResponses converts a slice of Anamnesis entities to DTOs
func AnamnesesToResponses(records []entity.Anamnesis) []dto.AnamnesisResponse {
	responses := make([]dto.AnamnesisResponse, len(records))
	for i := range records {
		responses[i] = *AnamnesisToResponse(&records[i])
	}
	return responses
}
