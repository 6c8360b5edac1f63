package shift

import (
	"context"
)

// ConfigRepository defines data access for shift configurations.
// Both lookup methods return ErrShiftConfigNotFound when no row
// exists; the resolver recovers from every failure.
type ConfigRepository interface {
	// GetByEmployeeID retrieves an employee-specific override
	GetByEmployeeID(ctx context.Context, employeeID string) (Config, error)

	// GetDefault retrieves the organization-wide default
	GetDefault(ctx context.Context) (Config, error)

	// Upsert creates or replaces a configuration. A nil EmployeeID
	// targets the organization default.
	Upsert(ctx context.Context, cfg Config) (Config, error)

	// ListEmployeeIDs returns every employee with an override,
	// used by the nightly absent-marking job.
	ListEmployeeIDs(ctx context.Context) ([]string, error)
}
