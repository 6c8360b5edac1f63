package attendance

import (
	"context"

	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
)

// AttendanceService stamps check-in/check-out times onto the day's
// worksheet record and classifies attendance against the employee's
// resolved shift window.
type AttendanceService interface {
	// CheckIn records today's check-in, creating the day's worksheet
	// when missing. The on-time/late classification is recorded once
	// and is immutable for the day.
	CheckIn(ctx context.Context) (worksheet.WorksheetResponse, error)

	// CheckOut records the check-out, finalizes the day's attendance
	// status and pre-populates hourly placeholder slots when no work
	// was logged.
	CheckOut(ctx context.Context) (worksheet.WorksheetResponse, error)
}
