package shift

import (
	"time"

	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/timecode"
)

// minutesOfDay projects an instant onto the shift's dateless clock.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// EvaluateCheckIn classifies a check-in instant against the shift
// window. More than LateThresholdMinutes past the start is late;
// exactly on the threshold is still on time. The classification is
// recorded once at check-in and never changes for the day.
func EvaluateCheckIn(cfg shift.Config, at time.Time) shift.AttendanceStatus {
	startMins, err := timecode.Parse(cfg.StartTime)
	if err != nil {
		startMins, _ = timecode.Parse(shift.DefaultConfig().StartTime)
	}

	if minutesOfDay(at)-startMins > cfg.LateThresholdMinutes {
		return shift.StatusLate
	}
	return shift.StatusOnTime
}

// EvaluateCheckOut finalizes the day's status at check-out. Leaving
// more than HalfDayThresholdHours before the nominal end marks the day
// half_day; otherwise the check-in classification stands.
func EvaluateCheckOut(cfg shift.Config, checkInStatus shift.AttendanceStatus, at time.Time) shift.AttendanceStatus {
	endMins, err := timecode.Parse(cfg.EndTime)
	if err != nil {
		endMins, _ = timecode.Parse(shift.DefaultConfig().EndTime)
	}

	if endMins-minutesOfDay(at) > cfg.HalfDayThresholdHours*60 {
		return shift.StatusHalfDay
	}
	return checkInStatus
}
