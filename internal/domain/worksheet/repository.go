package worksheet

import (
	"context"
)

// WorksheetRepository defines data access methods for worksheet
// records. The (employee_id, date) pair is unique; Create surfaces
// ErrWorksheetExists when a second writer loses the race.
type WorksheetRepository interface {
	// Create inserts a new worksheet record
	Create(ctx context.Context, ws Worksheet) (Worksheet, error)

	// GetByID retrieves a worksheet by ID, scoped to the employee
	GetByID(ctx context.Context, id string, employeeID string) (Worksheet, error)

	// GetByEmployeeAndDate retrieves the record for one employee-day.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Worksheet, error)

	// Update replaces an existing worksheet record
	Update(ctx context.Context, ws Worksheet) error

	// Delete removes a worksheet record
	Delete(ctx context.Context, id string, employeeID string) error

	// List retrieves worksheets for an employee with filters and pagination
	List(ctx context.Context, employeeID string, filter WorksheetFilter) ([]Worksheet, int64, error)

	// ListByDateRange retrieves all records for an employee in an
	// inclusive date range, sorted by date ascending. Used by the
	// range summary and never paginated.
	ListByDateRange(ctx context.Context, employeeID string, startDate, endDate string) ([]Worksheet, error)
}
