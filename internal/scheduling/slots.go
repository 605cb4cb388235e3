// Package scheduling computes bookable time slots for a doctor's day. All
// times are time-of-day strings in zero-padded HH:MM:SS form, so ordering
// and window checks reduce to lexicographic string comparison.
package scheduling

import (
	"fmt"
	"time"

	"dental-clinic-service/internal/domain/entity"
)

// SlotInterval is the grid granularity.
const SlotInterval = 30 * time.Minute

// TimeSlot is an ephemeral slot of the scheduling grid, never persisted.
type TimeSlot struct {
	Value     string `json:"value"` // HH:MM:SS
	Label     string `json:"label"` // HH:MM
	Available bool   `json:"available"`
}

// Grid returns the canonical ordered list of time-of-day values covering a
// full day at SlotInterval granularity, 00:00:00 through 23:30:00. Cheap
// enough to recompute on every call.
func Grid() []string {
	slots := make([]string, 0, int(24*time.Hour/SlotInterval))
	for t := time.Duration(0); t < 24*time.Hour; t += SlotInterval {
		h := int(t / time.Hour)
		m := int(t % time.Hour / time.Minute)
		slots = append(slots, fmt.Sprintf("%02d:%02d:00", h, m))
	}
	return slots
}

// WorkingSlots intersects the doctor's configured window and weekday set
// with the full grid for the given calendar date. A weekday outside the
// doctor's set short-circuits to an empty list; otherwise the grid is
// filtered to [AvailableFromTime, AvailableToTime] inclusive.
func WorkingSlots(doctor *entity.DoctorProfile, date time.Time) []string {
	weekday := int(date.UTC().Weekday())
	if !doctor.AvailableWeekDays.Contains(weekday) {
		return nil
	}

	var slots []string
	for _, slot := range Grid() {
		if slot >= doctor.AvailableFromTime && slot <= doctor.AvailableToTime {
			slots = append(slots, slot)
		}
	}
	return slots
}

// OccupiedTimes projects the appointments falling on the given date to
// their HH:MM:SS components, skipping cancelled rows and the appointment
// being edited. Appointments are assumed grid-aligned; no partial overlap
// detection happens here.
func OccupiedTimes(appointments []entity.Appointment, date time.Time, excludeID string) map[string]bool {
	occupied := make(map[string]bool)
	for i := range appointments {
		appt := &appointments[i]
		if appt.IsCancelled() {
			continue
		}
		if excludeID != "" && appt.ID.String() == excludeID {
			continue
		}
		if !appt.SameDay(date) {
			continue
		}
		occupied[appt.TimeOfDay()] = true
	}
	return occupied
}

// BuildSlots assembles the final slot list: every working slot of the
// doctor for the date, flagged unavailable when occupied. Labels are the
// first five characters of the value (HH:MM).
func BuildSlots(doctor *entity.DoctorProfile, date time.Time, appointments []entity.Appointment, excludeID string) []TimeSlot {
	occupied := OccupiedTimes(appointments, date, excludeID)

	working := WorkingSlots(doctor, date)
	slots := make([]TimeSlot, len(working))
	for i, value := range working {
		slots[i] = TimeSlot{
			Value:     value,
			Label:     value[:5],
			Available: !occupied[value],
		}
	}
	return slots
}
