package entity

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

// The migrations and the raw scheduling queries both address the column as
// appointment_datetime, so the model mapping must resolve to that exact name.
func TestAppointmentColumnMapping(t *testing.T) {
	s, err := schema.Parse(&Appointment{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	field := s.LookUpField("AppointmentDateTime")
	assert.NotNil(t, field)
	assert.Equal(t, "appointment_datetime", field.DBName)

	assert.Equal(t, "appointments", s.Table)
}

func TestAppointmentTimeOfDay(t *testing.T) {
	a := &Appointment{
		AppointmentDateTime: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, "09:30:00", a.TimeOfDay())
}

func TestAppointmentSameDay(t *testing.T) {
	a := &Appointment{
		AppointmentDateTime: time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC),
	}

	assert.True(t, a.SameDay(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, a.SameDay(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)))
}

func TestAppointmentCancel(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}
	assert.False(t, a.IsCancelled())

	a.Cancel()
	assert.True(t, a.IsCancelled())
	assert.Equal(t, AppointmentStatusCancelled, a.Status)
}
