package converter

import (
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	isActive := true
	if profile.User.IsActive != nil {
		isActive = *profile.User.IsActive
	}

	return &dto.DoctorResponse{
		ID:                profile.UserID,
		ClinicID:          profile.ClinicID,
		Email:             profile.User.Email,
		FullName:          profile.User.FullName,
		CRONumber:         profile.CRONumber,
		Specialty:         profile.Specialty,
		AvailableWeekDays: profile.AvailableWeekDays,
		AvailableFromTime: profile.AvailableFromTime,
		AvailableToTime:   profile.AvailableToTime,
		IsActive:          isActive,
		CreatedAt:         profile.User.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of DoctorProfile entities to DTOs
func DoctorsToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorToResponse(&profiles[i])
	}
	return responses
}
