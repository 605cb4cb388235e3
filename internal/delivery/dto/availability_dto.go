package dto

import "dental-clinic-service/internal/scheduling"

type AvailabilityResponse struct {
	DoctorID string                `json:"doctor_id"`
	Date     string                `json:"date"`
	Slots    []scheduling.TimeSlot `json:"slots"`
}
