package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/database"
)

type worksheetRepositoryImpl struct {
	db *database.DB
}

func NewWorksheetRepository(db *database.DB) worksheet.WorksheetRepository {
	return &worksheetRepositoryImpl{db: db}
}

const worksheetColumns = `
	id, employee_id, date::text, entries, breaks,
	total_work_hours, total_break_hours, effective_work_hours,
	productivity_score, task_summary,
	check_in_time, check_out_time, attendance_status,
	is_submitted, submitted_at, created_at, updated_at
`

func scanWorksheet(row pgx.Row) (worksheet.Worksheet, error) {
	var ws worksheet.Worksheet
	var entriesJSON, breaksJSON, summaryJSON []byte

	err := row.Scan(
		&ws.ID, &ws.EmployeeID, &ws.Date, &entriesJSON, &breaksJSON,
		&ws.TotalWorkHours, &ws.TotalBreakHours, &ws.EffectiveWorkHours,
		&ws.ProductivityScore, &summaryJSON,
		&ws.CheckInTime, &ws.CheckOutTime, &ws.AttendanceStatus,
		&ws.IsSubmitted, &ws.SubmittedAt, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return worksheet.Worksheet{}, err
	}

	if err := json.Unmarshal(entriesJSON, &ws.Entries); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("unmarshal worksheet entries: %w", err)
	}
	if err := json.Unmarshal(breaksJSON, &ws.Breaks); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("unmarshal worksheet breaks: %w", err)
	}
	if err := json.Unmarshal(summaryJSON, &ws.TaskSummary); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("unmarshal task summary: %w", err)
	}

	return ws, nil
}

func marshalWorksheetJSON(ws worksheet.Worksheet) (entries, breaks, summary []byte, err error) {
	if ws.Entries == nil {
		ws.Entries = []worksheet.Entry{}
	}
	if ws.Breaks == nil {
		ws.Breaks = []worksheet.Break{}
	}

	entries, err = json.Marshal(ws.Entries)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal worksheet entries: %w", err)
	}
	breaks, err = json.Marshal(ws.Breaks)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal worksheet breaks: %w", err)
	}
	summary, err = json.Marshal(ws.TaskSummary)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal task summary: %w", err)
	}
	return entries, breaks, summary, nil
}

// Create implements worksheet.WorksheetRepository.
func (r *worksheetRepositoryImpl) Create(ctx context.Context, ws worksheet.Worksheet) (worksheet.Worksheet, error) {
	q := GetQuerier(ctx, r.db)

	entriesJSON, breaksJSON, summaryJSON, err := marshalWorksheetJSON(ws)
	if err != nil {
		return worksheet.Worksheet{}, err
	}

	query := `
		INSERT INTO worksheets (
			id, employee_id, date, entries, breaks,
			total_work_hours, total_break_hours, effective_work_hours,
			productivity_score, task_summary,
			check_in_time, check_out_time, attendance_status,
			is_submitted, submitted_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10,
			$11, $12, $13,
			$14, $15, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	ws.ID = uuid.New().String()
	err = q.QueryRow(ctx, query,
		ws.ID, ws.EmployeeID, ws.Date, entriesJSON, breaksJSON,
		ws.TotalWorkHours, ws.TotalBreakHours, ws.EffectiveWorkHours,
		ws.ProductivityScore, summaryJSON,
		ws.CheckInTime, ws.CheckOutTime, ws.AttendanceStatus,
		ws.IsSubmitted, ws.SubmittedAt,
	).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique (employee_id, date) violated
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worksheet.Worksheet{}, worksheet.ErrWorksheetExists
		}
		return worksheet.Worksheet{}, err
	}

	return ws, nil
}

// GetByID implements worksheet.WorksheetRepository.
func (r *worksheetRepositoryImpl) GetByID(ctx context.Context, id string, employeeID string) (worksheet.Worksheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + worksheetColumns + `
		FROM worksheets
		WHERE id = $1 AND employee_id = $2
	`

	ws, err := scanWorksheet(q.QueryRow(ctx, query, id, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worksheet.Worksheet{}, worksheet.ErrWorksheetNotFound
		}
		return worksheet.Worksheet{}, err
	}
	return ws, nil
}

// GetByEmployeeAndDate implements worksheet.WorksheetRepository.
func (r *worksheetRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*worksheet.Worksheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + worksheetColumns + `
		FROM worksheets
		WHERE employee_id = $1 AND date = $2
	`

	ws, err := scanWorksheet(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ws, nil
}

// Update implements worksheet.WorksheetRepository.
func (r *worksheetRepositoryImpl) Update(ctx context.Context, ws worksheet.Worksheet) error {
	q := GetQuerier(ctx, r.db)

	entriesJSON, breaksJSON, summaryJSON, err := marshalWorksheetJSON(ws)
	if err != nil {
		return err
	}

	query := `
		UPDATE worksheets
		SET entries = $1, breaks = $2,
			total_work_hours = $3, total_break_hours = $4, effective_work_hours = $5,
			productivity_score = $6, task_summary = $7,
			check_in_time = $8, check_out_time = $9, attendance_status = $10,
			is_submitted = $11, submitted_at = $12,
			updated_at = NOW()
		WHERE id = $13 AND employee_id = $14
	`

	commandTag, err := q.Exec(ctx, query,
		entriesJSON, breaksJSON,
		ws.TotalWorkHours, ws.TotalBreakHours, ws.EffectiveWorkHours,
		ws.ProductivityScore, summaryJSON,
		ws.CheckInTime, ws.CheckOutTime, ws.AttendanceStatus,
		ws.IsSubmitted, ws.SubmittedAt,
		ws.ID, ws.EmployeeID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return worksheet.ErrWorksheetNotFound
	}
	return nil
}

// Delete implements worksheet.WorksheetRepository.
func (r *worksheetRepositoryImpl) Delete(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM worksheets
		WHERE id = $1 AND employee_id = $2
	`

	commandTag, err := q.Exec(ctx, query, id, employeeID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return worksheet.ErrWorksheetNotFound
	}
	return nil
}

// List implements worksheet.WorksheetRepository.
func (r *worksheetRepositoryImpl) List(ctx context.Context, employeeID string, filter worksheet.WorksheetFilter) ([]worksheet.Worksheet, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"employee_id = $1"}
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Submitted != nil {
		conditions = append(conditions, fmt.Sprintf("is_submitted = $%d", argIdx))
		args = append(args, *filter.Submitted)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM worksheets " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM worksheets
		%s
		ORDER BY date %s
		LIMIT $%d OFFSET $%d
	`, worksheetColumns, whereClause, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	worksheets := make([]worksheet.Worksheet, 0)
	for rows.Next() {
		ws, err := scanWorksheet(rows)
		if err != nil {
			return nil, 0, err
		}
		worksheets = append(worksheets, ws)
	}

	return worksheets, totalCount, nil
}

// ListByDateRange implements worksheet.WorksheetRepository.
func (r *worksheetRepositoryImpl) ListByDateRange(ctx context.Context, employeeID string, startDate, endDate string) ([]worksheet.Worksheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + worksheetColumns + `
		FROM worksheets
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	worksheets := make([]worksheet.Worksheet, 0)
	for rows.Next() {
		ws, err := scanWorksheet(rows)
		if err != nil {
			return nil, err
		}
		worksheets = append(worksheets, ws)
	}

	return worksheets, nil
}
