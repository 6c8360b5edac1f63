package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/database"
)

type shiftConfigRepositoryImpl struct {
	db *database.DB
}

func NewShiftConfigRepository(db *database.DB) shift.ConfigRepository {
	return &shiftConfigRepositoryImpl{db: db}
}

const shiftConfigColumns = `
	id, employee_id, start_time, end_time,
	late_threshold_minutes, half_day_threshold_hours,
	working_days, break_duration_minutes,
	created_at, updated_at
`

func scanShiftConfig(row pgx.Row) (shift.Config, error) {
	var cfg shift.Config
	err := row.Scan(
		&cfg.ID, &cfg.EmployeeID, &cfg.StartTime, &cfg.EndTime,
		&cfg.LateThresholdMinutes, &cfg.HalfDayThresholdHours,
		&cfg.WorkingDays, &cfg.BreakDurationMinutes,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}

// GetByEmployeeID implements shift.ConfigRepository.
func (r *shiftConfigRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftConfigColumns + `
		FROM shift_configs
		WHERE employee_id = $1
	`

	cfg, err := scanShiftConfig(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Config{}, shift.ErrShiftConfigNotFound
		}
		return shift.Config{}, err
	}
	return cfg, nil
}

// GetDefault implements shift.ConfigRepository.
func (r *shiftConfigRepositoryImpl) GetDefault(ctx context.Context) (shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftConfigColumns + `
		FROM shift_configs
		WHERE employee_id IS NULL
	`

	cfg, err := scanShiftConfig(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Config{}, shift.ErrShiftConfigNotFound
		}
		return shift.Config{}, err
	}
	return cfg, nil
}

// Upsert implements shift.ConfigRepository.
func (r *shiftConfigRepositoryImpl) Upsert(ctx context.Context, cfg shift.Config) (shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	// Rows are keyed by employee_id with NULL marking the org default,
	// so the conflict target cannot be a plain unique column. Update
	// first, insert when nothing matched.
	updateQuery := `
		UPDATE shift_configs
		SET start_time = $1, end_time = $2,
			late_threshold_minutes = $3, half_day_threshold_hours = $4,
			working_days = $5, break_duration_minutes = $6,
			updated_at = NOW()
		WHERE employee_id IS NOT DISTINCT FROM $7
		RETURNING ` + shiftConfigColumns

	updated, err := scanShiftConfig(q.QueryRow(ctx, updateQuery,
		cfg.StartTime, cfg.EndTime,
		cfg.LateThresholdMinutes, cfg.HalfDayThresholdHours,
		cfg.WorkingDays, cfg.BreakDurationMinutes,
		cfg.EmployeeID,
	))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return shift.Config{}, err
	}

	insertQuery := `
		INSERT INTO shift_configs (
			id, employee_id, start_time, end_time,
			late_threshold_minutes, half_day_threshold_hours,
			working_days, break_duration_minutes,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6,
			$7, $8,
			NOW(), NOW()
		) RETURNING ` + shiftConfigColumns

	created, err := scanShiftConfig(q.QueryRow(ctx, insertQuery,
		uuid.New().String(), cfg.EmployeeID, cfg.StartTime, cfg.EndTime,
		cfg.LateThresholdMinutes, cfg.HalfDayThresholdHours,
		cfg.WorkingDays, cfg.BreakDurationMinutes,
	))
	if err != nil {
		return shift.Config{}, err
	}
	return created, nil
}

// ListEmployeeIDs implements shift.ConfigRepository.
func (r *shiftConfigRepositoryImpl) ListEmployeeIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id
		FROM shift_configs
		WHERE employee_id IS NOT NULL
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
