package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	shiftService "github.com/sanketsmane/ems-backend-go/internal/service/shift"
)

type WorksheetJobs struct {
	worksheetRepo worksheet.WorksheetRepository
	configRepo    shift.ConfigRepository
	resolver      *shiftService.Resolver
	now           func() time.Time
}

func NewWorksheetJobs(
	worksheetRepo worksheet.WorksheetRepository,
	configRepo shift.ConfigRepository,
	resolver *shiftService.Resolver,
) *WorksheetJobs {
	return &WorksheetJobs{
		worksheetRepo: worksheetRepo,
		configRepo:    configRepo,
		resolver:      resolver,
		now:           time.Now,
	}
}

func (j *WorksheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_worksheets", 1*time.Hour, j.MarkAbsentWorksheets)
}

// MarkAbsentWorksheets creates an absent worksheet record for every
// employee who had a working day yesterday but never checked in.
func (j *WorksheetJobs) MarkAbsentWorksheets(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if j.now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent worksheets job")

	employeeIDs, err := j.configRepo.ListEmployeeIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees with shift configs: %w", err)
	}

	yesterday := j.now().UTC().AddDate(0, 0, -1)
	yesterdayStr := yesterday.Format("2006-01-02")

	markedCount := 0
	for _, employeeID := range employeeIDs {
		cfg := j.resolver.Resolve(ctx, employeeID)
		if !cfg.IsWorkingDay(yesterday) {
			continue
		}

		existing, err := j.worksheetRepo.GetByEmployeeAndDate(ctx, employeeID, yesterdayStr)
		if err != nil {
			slog.Error("Cron: Failed to look up worksheet",
				"employee_id", employeeID, "date", yesterdayStr, "error", err)
			continue
		}
		if existing != nil {
			// Already has a record (checked in or marked absent earlier).
			continue
		}

		status := string(shift.StatusAbsent)
		absent := worksheet.Worksheet{
			EmployeeID:       employeeID,
			Date:             yesterdayStr,
			AttendanceStatus: &status,
		}

		if _, err := j.worksheetRepo.Create(ctx, absent); err != nil {
			slog.Error("Cron: Failed to create absent worksheet",
				"employee_id", employeeID, "date", yesterdayStr, "error", err)
			continue
		}
		markedCount++
	}

	slog.Info("Cron: Marked absent worksheets", "count", markedCount)
	return nil
}
