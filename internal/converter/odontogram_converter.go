package converter

import (
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

// OdontogramToResponse converts an Odontogram snapshot to DTO
func OdontogramToResponse(snapshot *entity.Odontogram) *dto.OdontogramResponse {
	if snapshot == nil {
		return nil
	}

	teeth := make([]dto.ToothMarkDTO, len(snapshot.Teeth))
	for i, tooth := range snapshot.Teeth {
		teeth[i] = dto.ToothMarkDTO{
			ToothNumber: tooth.ToothNumber,
			Face:        tooth.Face,
			Status:      tooth.Status,
			Observation: tooth.Observation,
		}
	}

	response := &dto.OdontogramResponse{
		ID:        snapshot.ID,
		PatientID: snapshot.PatientID,
		DoctorID:  snapshot.DoctorID,
		Date:      snapshot.Date.Format("2006-01-02"),
		Teeth:     teeth,
		CreatedAt: snapshot.CreatedAt,
	}

	if snapshot.Doctor.UserID != uuid.Nil {
		response.DoctorName = snapshot.Doctor.User.FullName
	}

	return response
}

// OdontogramsToResponses converts a slice of snapshots to DTOs
func OdontogramsToResponses(snapshots []entity.Odontogram) []dto.OdontogramResponse {
	responses := make([]dto.OdontogramResponse, len(snapshots))
	for i := range snapshots {
		responses[i] = *OdontogramToResponse(&snapshots[i])
	}
	return responses
}
