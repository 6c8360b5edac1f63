package shift

import (
	"github.com/sanketsmane/ems-backend-go/internal/pkg/timecode"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT CONFIG DTOs
// ========================================

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type UpsertConfigRequest struct {
	EmployeeID            *string  `json:"-"`
	StartTime             string   `json:"start_time"`
	EndTime               string   `json:"end_time"`
	LateThresholdMinutes  int      `json:"late_threshold_minutes"`
	HalfDayThresholdHours int      `json:"half_day_threshold_hours"`
	WorkingDays           []string `json:"working_days"`
	BreakDurationMinutes  int      `json:"break_duration_minutes"`
}

func (r *UpsertConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !timecode.IsValid(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}
	if !timecode.IsValid(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}
	if r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_minutes",
			Message: "late_threshold_minutes must not be negative",
		})
	}
	if r.HalfDayThresholdHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_threshold_hours",
			Message: "half_day_threshold_hours must not be negative",
		})
	}
	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}
	for _, day := range r.WorkingDays {
		if !validator.IsInSlice(day, weekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days must contain weekday names only",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConfigResponse struct {
	ID                    string   `json:"id,omitempty"`
	EmployeeID            *string  `json:"employee_id,omitempty"`
	StartTime             string   `json:"start_time"`
	EndTime               string   `json:"end_time"`
	LateThresholdMinutes  int      `json:"late_threshold_minutes"`
	HalfDayThresholdHours int      `json:"half_day_threshold_hours"`
	WorkingDays           []string `json:"working_days"`
	BreakDurationMinutes  int      `json:"break_duration_minutes"`
}

func NewConfigResponse(cfg Config) ConfigResponse {
	return ConfigResponse{
		ID:                    cfg.ID,
		EmployeeID:            cfg.EmployeeID,
		StartTime:             cfg.StartTime,
		EndTime:               cfg.EndTime,
		LateThresholdMinutes:  cfg.LateThresholdMinutes,
		HalfDayThresholdHours: cfg.HalfDayThresholdHours,
		WorkingDays:           cfg.WorkingDays,
		BreakDurationMinutes:  cfg.BreakDurationMinutes,
	}
}
