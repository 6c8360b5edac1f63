package shift

import "time"

// AttendanceStatus classifies one employee-day. The check-in
// classification (on_time/late) is recorded once and never changes;
// check-out may finalize the day as half_day.
type AttendanceStatus string

const (
	StatusOnTime  AttendanceStatus = "on_time"
	StatusLate    AttendanceStatus = "late"
	StatusHalfDay AttendanceStatus = "half_day"
	StatusAbsent  AttendanceStatus = "absent"
)

// Config is a shift window definition, either the organization default
// (EmployeeID nil) or a per-employee override.
type Config struct {
	ID                    string
	EmployeeID            *string
	StartTime             string // HH:MM
	EndTime               string // HH:MM
	LateThresholdMinutes  int
	HalfDayThresholdHours int
	WorkingDays           []string // weekday names, advisory for reporting
	BreakDurationMinutes  int      // allowance, not enforced arithmetically
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// DefaultConfig is the hard-coded fallback applied when neither an
// employee override nor an organization default can be resolved.
// Check-in and check-out must proceed even when the config store is
// down.
func DefaultConfig() Config {
	return Config{
		StartTime:             "09:00",
		EndTime:               "18:00",
		LateThresholdMinutes:  30,
		HalfDayThresholdHours: 4,
		WorkingDays:           []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		BreakDurationMinutes:  60,
	}
}

// IsWorkingDay reports whether the weekday of t is in WorkingDays.
// Advisory only: check-ins on non-working days are never rejected.
func (c Config) IsWorkingDay(t time.Time) bool {
	day := t.Weekday().String()
	for _, d := range c.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}
