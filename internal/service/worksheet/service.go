package worksheet

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/database"
	"github.com/sanketsmane/ems-backend-go/internal/repository/postgresql"
)

type WorksheetServiceImpl struct {
	db *database.DB
	worksheet.WorksheetRepository
	calculator *Calculator
	now        func() time.Time
}

func NewWorksheetService(db *database.DB, worksheetRepo worksheet.WorksheetRepository, calculator *Calculator) worksheet.WorksheetService {
	return &WorksheetServiceImpl{
		db:                  db,
		WorksheetRepository: worksheetRepo,
		calculator:          calculator,
		now:                 time.Now,
	}
}

// inTransaction runs fn inside a database transaction so the
// read-check-recompute-write flows are one atomic step. Unit tests
// construct the service over in-memory repositories without a pool;
// fn runs directly then.
func (s *WorksheetServiceImpl) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// Create implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) Create(ctx context.Context, req worksheet.CreateWorksheetRequest) (worksheet.WorksheetResponse, error) {
	if err := req.Validate(); err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	ws := worksheet.Worksheet{
		EmployeeID:   employeeID,
		Date:         req.Date,
		Entries:      entriesFromInput(req.Entries),
		Breaks:       breaksFromInput(req.Breaks),
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
	}

	ws = s.calculator.Recompute(ws)

	created, err := s.WorksheetRepository.Create(ctx, ws)
	if err != nil {
		if errors.Is(err, worksheet.ErrWorksheetExists) {
			return worksheet.WorksheetResponse{}, worksheet.ErrWorksheetExists
		}
		return worksheet.WorksheetResponse{}, fmt.Errorf("failed to create worksheet: %w", err)
	}

	return mapWorksheetToResponse(created), nil
}

// Get implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) Get(ctx context.Context, id string) (worksheet.WorksheetResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	ws, err := s.WorksheetRepository.GetByID(ctx, id, employeeID)
	if err != nil {
		if errors.Is(err, worksheet.ErrWorksheetNotFound) {
			return worksheet.WorksheetResponse{}, worksheet.ErrWorksheetNotFound
		}
		return worksheet.WorksheetResponse{}, fmt.Errorf("failed to get worksheet: %w", err)
	}

	return mapWorksheetToResponse(ws), nil
}

// GetByDate implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) GetByDate(ctx context.Context, date string) (worksheet.WorksheetResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	ws, err := s.WorksheetRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return worksheet.WorksheetResponse{}, fmt.Errorf("failed to get worksheet by date: %w", err)
	}
	if ws == nil {
		return worksheet.WorksheetResponse{}, worksheet.ErrWorksheetNotFound
	}

	return mapWorksheetToResponse(*ws), nil
}

// Update implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) Update(ctx context.Context, req worksheet.UpdateWorksheetRequest) (worksheet.WorksheetResponse, error) {
	if err := req.Validate(); err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	var updated worksheet.Worksheet
	err = s.inTransaction(ctx, func(ctx context.Context) error {
		ws, err := s.WorksheetRepository.GetByID(ctx, req.ID, employeeID)
		if err != nil {
			if errors.Is(err, worksheet.ErrWorksheetNotFound) {
				return worksheet.ErrWorksheetNotFound
			}
			return fmt.Errorf("failed to get worksheet: %w", err)
		}

		if ws.IsSubmitted {
			return worksheet.ErrWorksheetSubmitted
		}

		ws.Entries = entriesFromInput(req.Entries)
		ws.Breaks = breaksFromInput(req.Breaks)
		if req.CheckInTime != nil {
			ws.CheckInTime = req.CheckInTime
		}
		if req.CheckOutTime != nil {
			ws.CheckOutTime = req.CheckOutTime
		}

		ws = s.calculator.Recompute(ws)

		if err := s.WorksheetRepository.Update(ctx, ws); err != nil {
			return fmt.Errorf("failed to update worksheet: %w", err)
		}

		updated, err = s.WorksheetRepository.GetByID(ctx, req.ID, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get updated worksheet: %w", err)
		}
		return nil
	})
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	return mapWorksheetToResponse(updated), nil
}

// Delete implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) Delete(ctx context.Context, id string) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.inTransaction(ctx, func(ctx context.Context) error {
		ws, err := s.WorksheetRepository.GetByID(ctx, id, employeeID)
		if err != nil {
			if errors.Is(err, worksheet.ErrWorksheetNotFound) {
				return worksheet.ErrWorksheetNotFound
			}
			return fmt.Errorf("failed to get worksheet: %w", err)
		}

		if ws.IsSubmitted {
			return worksheet.ErrWorksheetSubmitted
		}

		if err := s.WorksheetRepository.Delete(ctx, id, employeeID); err != nil {
			return fmt.Errorf("failed to delete worksheet: %w", err)
		}

		return nil
	})
}

// Submit implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) Submit(ctx context.Context, id string) (worksheet.WorksheetResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	var updated worksheet.Worksheet
	err = s.inTransaction(ctx, func(ctx context.Context) error {
		ws, err := s.WorksheetRepository.GetByID(ctx, id, employeeID)
		if err != nil {
			if errors.Is(err, worksheet.ErrWorksheetNotFound) {
				return worksheet.ErrWorksheetNotFound
			}
			return fmt.Errorf("failed to get worksheet: %w", err)
		}

		if ws.IsSubmitted {
			return worksheet.ErrWorksheetSubmitted
		}

		submittedAt := s.now()
		ws.IsSubmitted = true
		ws.SubmittedAt = &submittedAt
		ws = s.calculator.Recompute(ws)

		if err := s.WorksheetRepository.Update(ctx, ws); err != nil {
			return fmt.Errorf("failed to submit worksheet: %w", err)
		}

		updated, err = s.WorksheetRepository.GetByID(ctx, id, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get submitted worksheet: %w", err)
		}
		return nil
	})
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	return mapWorksheetToResponse(updated), nil
}

// List implements worksheet.WorksheetService.
func (s *WorksheetServiceImpl) List(ctx context.Context, filter worksheet.WorksheetFilter) (worksheet.ListWorksheetResponse, error) {
	if err := filter.Validate(); err != nil {
		return worksheet.ListWorksheetResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.ListWorksheetResponse{}, err
	}

	worksheets, total, err := s.WorksheetRepository.List(ctx, employeeID, filter)
	if err != nil {
		return worksheet.ListWorksheetResponse{}, fmt.Errorf("failed to list worksheets: %w", err)
	}

	responses := make([]worksheet.WorksheetResponse, 0, len(worksheets))
	for _, ws := range worksheets {
		responses = append(responses, mapWorksheetToResponse(ws))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return worksheet.ListWorksheetResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Worksheets: responses,
	}, nil
}

// Summary implements worksheet.WorksheetService. Pure read-side
// aggregation: an empty range yields a zero summary with an empty
// breakdown.
func (s *WorksheetServiceImpl) Summary(ctx context.Context, req worksheet.SummaryRequest) (worksheet.RangeSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return worksheet.RangeSummaryResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.RangeSummaryResponse{}, err
	}

	records, err := s.WorksheetRepository.ListByDateRange(ctx, employeeID, req.StartDate, req.EndDate)
	if err != nil {
		return worksheet.RangeSummaryResponse{}, fmt.Errorf("failed to list worksheets in range: %w", err)
	}

	summary := worksheet.RangeSummaryResponse{
		TotalDays:      len(records),
		DailyBreakdown: make([]worksheet.DailySummary, 0, len(records)),
	}

	var scoreSum int
	for _, ws := range records {
		scoreSum += ws.ProductivityScore
		summary.TotalCompletedTasks += ws.TaskSummary.Completed
		summary.TotalWorkHours += ws.TotalWorkHours
		summary.TotalBreakHours += ws.TotalBreakHours
		summary.DailyBreakdown = append(summary.DailyBreakdown, worksheet.DailySummary{
			Date:               ws.Date,
			ProductivityScore:  ws.ProductivityScore,
			TotalWorkHours:     ws.TotalWorkHours,
			EffectiveWorkHours: ws.EffectiveWorkHours,
			CompletedTasks:     ws.TaskSummary.Completed,
			AttendanceStatus:   ws.AttendanceStatus,
		})
	}

	if len(records) > 0 {
		summary.AverageProductivity = float64(scoreSum) / float64(len(records))
	}

	return summary, nil
}

func entriesFromInput(inputs []worksheet.EntryInput) []worksheet.Entry {
	entries := make([]worksheet.Entry, 0, len(inputs))
	for _, in := range inputs {
		status := worksheet.EntryStatus(in.Status)
		if in.Status == "" {
			status = worksheet.StatusPending
		}
		entries = append(entries, worksheet.Entry{
			From:    in.From,
			To:      in.To,
			Task:    in.Task,
			Project: in.Project,
			Status:  status,
		})
	}
	return entries
}

func breaksFromInput(inputs []worksheet.BreakInput) []worksheet.Break {
	breaks := make([]worksheet.Break, 0, len(inputs))
	for _, in := range inputs {
		breaks = append(breaks, worksheet.Break{
			Start:  in.Start,
			End:    in.End,
			Reason: in.Reason,
		})
	}
	return breaks
}

// mapWorksheetToResponse converts a Worksheet entity to WorksheetResponse
func mapWorksheetToResponse(ws worksheet.Worksheet) worksheet.WorksheetResponse {
	var submittedAt *string
	if ws.SubmittedAt != nil {
		formatted := ws.SubmittedAt.Format("2006-01-02 15:04:05")
		submittedAt = &formatted
	}

	return worksheet.WorksheetResponse{
		ID:                 ws.ID,
		EmployeeID:         ws.EmployeeID,
		Date:               ws.Date,
		Entries:            ws.Entries,
		Breaks:             ws.Breaks,
		TotalWorkHours:     ws.TotalWorkHours,
		TotalBreakHours:    ws.TotalBreakHours,
		EffectiveWorkHours: ws.EffectiveWorkHours,
		ProductivityScore:  ws.ProductivityScore,
		TaskSummary:        ws.TaskSummary,
		CheckInTime:        ws.CheckInTime,
		CheckOutTime:       ws.CheckOutTime,
		AttendanceStatus:   ws.AttendanceStatus,
		IsSubmitted:        ws.IsSubmitted,
		SubmittedAt:        submittedAt,
		CreatedAt:          ws.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:          ws.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
