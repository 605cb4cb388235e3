package converter

import (
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
)

// EmployeeToResponse converts an EmployeeProfile entity to EmployeeResponse DTO
func EmployeeToResponse(profile *entity.EmployeeProfile) *dto.EmployeeResponse {
	if profile == nil {
		return nil
	}

	isActive := true
	if profile.User.IsActive != nil {
		isActive = *profile.User.IsActive
	}

	return &dto.EmployeeResponse{
		ID:          profile.UserID,
		ClinicID:    profile.ClinicID,
		Email:       profile.User.Email,
		FullName:    profile.User.FullName,
		Role:        profile.Role,
		PhoneNumber: profile.PhoneNumber,
		IsActive:    isActive,
		CreatedAt:   profile.User.CreatedAt,
	}
}

// EmployeesToResponses converts a slice of EmployeeProfile entities to DTOs
func EmployeesToResponses(profiles []entity.EmployeeProfile) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(profiles))
	for i := range profiles {
		responses[i] = *EmployeeToResponse(&profiles[i])
	}
	return responses
}
