package worksheet

import (
	"strings"

	"github.com/sanketsmane/ems-backend-go/internal/pkg/timecode"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/validator"
)

// ========================================
// WORKSHEET DTOs
// ========================================

type EntryInput struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Task    string `json:"task,omitempty"`
	Project string `json:"project,omitempty"`
	Status  string `json:"status,omitempty"`
}

type BreakInput struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}

func validateEntries(entries []EntryInput, errs validator.ValidationErrors) validator.ValidationErrors {
	for i, e := range entries {
		field := "entries[" + validator.Itoa(i) + "]"
		if !timecode.IsValid(e.From) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".from",
				Message: "from must be a valid HH:MM time",
			})
		}
		if !timecode.IsValid(e.To) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".to",
				Message: "to must be a valid HH:MM time",
			})
		}
		if e.Status != "" && !validator.IsInSlice(e.Status, EntryStatusValues) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".status",
				Message: "status must be one of: Completed, In Progress, Pending",
			})
		}
		if validator.ExceedsMaxLen(e.Task, 500) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".task",
				Message: "task must not exceed 500 characters",
			})
		}
		if validator.ExceedsMaxLen(e.Project, 100) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".project",
				Message: "project must not exceed 100 characters",
			})
		}
	}
	return errs
}

func validateBreaks(breaks []BreakInput, errs validator.ValidationErrors) validator.ValidationErrors {
	for i, b := range breaks {
		field := "breaks[" + validator.Itoa(i) + "]"
		if !timecode.IsValid(b.Start) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".start",
				Message: "start must be a valid HH:MM time",
			})
		}
		if !timecode.IsValid(b.End) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end",
				Message: "end must be a valid HH:MM time",
			})
		}
		if validator.IsEmpty(b.Reason) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".reason",
				Message: "reason is required",
			})
		} else if !validator.IsInSlice(b.Reason, BreakReasonValues) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".reason",
				Message: "reason must be one of: Lunch, Tea Break, Personal, Meeting, Other",
			})
		}
	}
	return errs
}

type CreateWorksheetRequest struct {
	Date         string       `json:"date"` // YYYY-MM-DD
	Entries      []EntryInput `json:"entries"`
	Breaks       []BreakInput `json:"breaks"`
	CheckInTime  *string      `json:"check_in_time,omitempty"`
	CheckOutTime *string      `json:"check_out_time,omitempty"`
}

func (r *CreateWorksheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	errs = validateEntries(r.Entries, errs)
	errs = validateBreaks(r.Breaks, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateWorksheetRequest replaces the record's entries and breaks.
// Derived fields are recomputed server-side and never accepted from
// the caller.
type UpdateWorksheetRequest struct {
	ID           string       `json:"-"`
	Entries      []EntryInput `json:"entries"`
	Breaks       []BreakInput `json:"breaks"`
	CheckInTime  *string      `json:"check_in_time,omitempty"`
	CheckOutTime *string      `json:"check_out_time,omitempty"`
}

func (r *UpdateWorksheetRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateEntries(r.Entries, errs)
	errs = validateBreaks(r.Breaks, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorksheetResponse struct {
	ID                 string      `json:"id"`
	EmployeeID         string      `json:"employee_id"`
	Date               string      `json:"date"`
	Entries            []Entry     `json:"entries"`
	Breaks             []Break     `json:"breaks"`
	TotalWorkHours     float64     `json:"total_work_hours"`
	TotalBreakHours    float64     `json:"total_break_hours"`
	EffectiveWorkHours float64     `json:"effective_work_hours"`
	ProductivityScore  int         `json:"productivity_score"`
	TaskSummary        TaskSummary `json:"task_summary"`
	CheckInTime        *string     `json:"check_in_time,omitempty"`
	CheckOutTime       *string     `json:"check_out_time,omitempty"`
	AttendanceStatus   *string     `json:"attendance_status,omitempty"`
	IsSubmitted        bool        `json:"is_submitted"`
	SubmittedAt        *string     `json:"submitted_at,omitempty"`
	CreatedAt          string      `json:"created_at"`
	UpdatedAt          string      `json:"updated_at"`
}

type WorksheetFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Submitted *bool   `json:"submitted,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *WorksheetFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListWorksheetResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Worksheets []WorksheetResponse `json:"worksheets"`
}

// SummaryRequest selects an inclusive date range for the read-side
// range aggregation.
type SummaryRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailySummary struct {
	Date               string  `json:"date"`
	ProductivityScore  int     `json:"productivity_score"`
	TotalWorkHours     float64 `json:"total_work_hours"`
	EffectiveWorkHours float64 `json:"effective_work_hours"`
	CompletedTasks     int     `json:"completed_tasks"`
	AttendanceStatus   *string `json:"attendance_status,omitempty"`
}

type RangeSummaryResponse struct {
	TotalDays           int            `json:"total_days"`
	AverageProductivity float64        `json:"average_productivity"`
	TotalCompletedTasks int            `json:"total_completed_tasks"`
	TotalWorkHours      float64        `json:"total_work_hours"`
	TotalBreakHours     float64        `json:"total_break_hours"`
	DailyBreakdown      []DailySummary `json:"daily_breakdown"`
}
