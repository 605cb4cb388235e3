package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// WeekDaySet is the set of weekdays a doctor attends, 0=Sunday..6=Saturday.
// Stored as a jsonb array.
type WeekDaySet []int

// Value implements driver.Valuer.
func (s WeekDaySet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *WeekDaySet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal week day set value:", value))
	}
	return json.Unmarshal(bytes, s)
}

// Contains reports whether the given weekday index belongs to the set.
func (s WeekDaySet) Contains(weekday int) bool {
	for _, d := range s {
		if d == weekday {
			return true
		}
	}
	return false
}

// DoctorProfile holds the doctor-specific data of a clinic user, including
// the availability window used by the scheduling engine. Times are
// UTC-normalized HH:MM:SS strings; AvailableFromTime < AvailableToTime.
type DoctorProfile struct {
	UserID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	ClinicID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"clinic_id"`
	CRONumber         string     `gorm:"column:cro_number;type:varchar(50);uniqueIndex;not null" json:"cro_number"`
	Specialty         string     `gorm:"type:varchar(100);not null;index" json:"specialty"`
	AvailableWeekDays WeekDaySet `gorm:"type:jsonb;not null" json:"available_week_days"`
	AvailableFromTime string     `gorm:"type:time;not null" json:"available_from_time"`
	AvailableToTime   string     `gorm:"type:time;not null" json:"available_to_time"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// IsBookable reports whether the doctor can still receive appointments. A nil
// active flag counts as active, matching the user account convention.
func (p *DoctorProfile) IsBookable() bool {
	return p.User.IsActive == nil || *p.User.IsActive
}
