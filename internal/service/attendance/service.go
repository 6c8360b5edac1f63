package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/attendance"
	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/database"
	"github.com/sanketsmane/ems-backend-go/internal/repository/postgresql"
	shiftService "github.com/sanketsmane/ems-backend-go/internal/service/shift"
	worksheetService "github.com/sanketsmane/ems-backend-go/internal/service/worksheet"
)

type AttendanceServiceImpl struct {
	db *database.DB
	worksheet.WorksheetRepository
	resolver   *shiftService.Resolver
	calculator *worksheetService.Calculator
	now        func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	worksheetRepo worksheet.WorksheetRepository,
	resolver *shiftService.Resolver,
	calculator *worksheetService.Calculator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                  db,
		WorksheetRepository: worksheetRepo,
		resolver:            resolver,
		calculator:          calculator,
		now:                 time.Now,
	}
}

// inTransaction runs fn inside a database transaction so the
// read-evaluate-write check-out flow is one atomic step. Unit tests
// construct the service over in-memory repositories without a pool;
// fn runs directly then.
func (a *AttendanceServiceImpl) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, a.db, fn)
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

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (worksheet.WorksheetResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	now := a.now()
	date := now.Format("2006-01-02")
	checkInTime := now.Format("15:04")

	ws, err := a.WorksheetRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return worksheet.WorksheetResponse{}, fmt.Errorf("failed to get worksheet for today: %w", err)
	}

	if ws != nil && ws.CheckInTime != nil {
		return worksheet.WorksheetResponse{}, attendance.ErrAlreadyCheckedIn
	}

	cfg := a.resolver.Resolve(ctx, employeeID)
	if !cfg.IsWorkingDay(now) {
		// Advisory only: non-working-day check-ins are allowed.
		slog.Info("Check-in on a non-working day",
			"employee_id", employeeID, "date", date)
	}

	status := string(shiftService.EvaluateCheckIn(cfg, now))

	if ws == nil {
		newWs := worksheet.Worksheet{
			EmployeeID:       employeeID,
			Date:             date,
			CheckInTime:      &checkInTime,
			AttendanceStatus: &status,
		}
		newWs = a.calculator.Recompute(newWs)

		created, err := a.WorksheetRepository.Create(ctx, newWs)
		if err != nil {
			if errors.Is(err, worksheet.ErrWorksheetExists) {
				// Lost the create race: a concurrent check-in won.
				return worksheet.WorksheetResponse{}, attendance.ErrAlreadyCheckedIn
			}
			return worksheet.WorksheetResponse{}, fmt.Errorf("failed to create worksheet at check-in: %w", err)
		}
		return mapToResponse(created), nil
	}

	ws.CheckInTime = &checkInTime
	ws.AttendanceStatus = &status
	*ws = a.calculator.Recompute(*ws)

	if err := a.WorksheetRepository.Update(ctx, *ws); err != nil {
		return worksheet.WorksheetResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	return mapToResponse(*ws), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (worksheet.WorksheetResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	now := a.now()
	date := now.Format("2006-01-02")
	checkOutTime := now.Format("15:04")

	var checkedOut worksheet.Worksheet
	err = a.inTransaction(ctx, func(ctx context.Context) error {
		ws, err := a.WorksheetRepository.GetByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return fmt.Errorf("failed to get worksheet for today: %w", err)
		}

		if ws == nil || ws.CheckInTime == nil {
			return attendance.ErrNotCheckedIn
		}
		if ws.CheckOutTime != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		cfg := a.resolver.Resolve(ctx, employeeID)

		checkInStatus := shift.StatusOnTime
		if ws.AttendanceStatus != nil {
			checkInStatus = shift.AttendanceStatus(*ws.AttendanceStatus)
		}
		status := string(shiftService.EvaluateCheckOut(cfg, checkInStatus, now))

		ws.CheckOutTime = &checkOutTime
		ws.AttendanceStatus = &status

		// A blank worksheet gets hourly placeholder slots so the employee
		// can fill in tasks after the fact.
		if len(ws.Entries) == 0 {
			for slot := range a.calculator.HourlySlots(*ws.CheckInTime, checkOutTime) {
				ws.Entries = append(ws.Entries, slot)
			}
		}

		checkedOut = a.calculator.Recompute(*ws)

		if err := a.WorksheetRepository.Update(ctx, checkedOut); err != nil {
			return fmt.Errorf("failed to record check-out: %w", err)
		}
		return nil
	})
	if err != nil {
		return worksheet.WorksheetResponse{}, err
	}

	return mapToResponse(checkedOut), nil
}

func mapToResponse(ws worksheet.Worksheet) worksheet.WorksheetResponse {
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
