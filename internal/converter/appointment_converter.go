package converter

import (
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                  appointment.ID,
		ClinicID:            appointment.ClinicID,
		DoctorID:            appointment.DoctorID,
		PatientID:           appointment.PatientID,
		AppointmentDateTime: appointment.AppointmentDateTime,
		Status:              string(appointment.Status),
		Procedure:           appointment.Procedure,
		Notes:               appointment.Notes,
		CreatedAt:           appointment.CreatedAt,
		UpdatedAt:           appointment.UpdatedAt,
	}

	if appointment.Doctor.UserID != uuid.Nil {
		response.DoctorName = appointment.Doctor.User.FullName
	}
	if appointment.Patient.ID != uuid.Nil {
		response.PatientName = appointment.Patient.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
