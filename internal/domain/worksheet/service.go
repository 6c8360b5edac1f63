package worksheet

import (
	"context"
)

// WorksheetService defines business logic for daily worksheet records.
// The authenticated employee is derived from JWT claims in ctx.
type WorksheetService interface {
	// Create validates and persists a new worksheet for one day.
	// Derived fields are recomputed before the write.
	Create(ctx context.Context, req CreateWorksheetRequest) (WorksheetResponse, error)

	// Get retrieves a single worksheet by ID
	Get(ctx context.Context, id string) (WorksheetResponse, error)

	// GetByDate retrieves the authenticated employee's worksheet for a date
	GetByDate(ctx context.Context, date string) (WorksheetResponse, error)

	// Update replaces entries/breaks and recomputes derived fields.
	// Submitted worksheets are locked.
	Update(ctx context.Context, req UpdateWorksheetRequest) (WorksheetResponse, error)

	// Delete removes a worksheet record
	Delete(ctx context.Context, id string) error

	// Submit locks the worksheet for the day
	Submit(ctx context.Context, id string) (WorksheetResponse, error)

	// List retrieves the employee's worksheets with filters
	List(ctx context.Context, filter WorksheetFilter) (ListWorksheetResponse, error)

	// Summary aggregates an inclusive date range of the employee's
	// records. An empty range yields a zero summary, not an error.
	Summary(ctx context.Context, req SummaryRequest) (RangeSummaryResponse, error)
}
