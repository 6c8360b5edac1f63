package shift

import (
	"context"
)

// ConfigService defines management operations for shift
// configurations. Reads resolve through the fallback chain and
// therefore always succeed with some effective configuration.
type ConfigService interface {
	// GetMyConfig returns the effective configuration for the
	// authenticated employee
	GetMyConfig(ctx context.Context) (ConfigResponse, error)

	// GetEffective returns the effective configuration for an employee
	GetEffective(ctx context.Context, employeeID string) (ConfigResponse, error)

	// GetDefault returns the organization default (built-in defaults
	// when none is stored)
	GetDefault(ctx context.Context) (ConfigResponse, error)

	// UpsertDefault creates or replaces the organization default
	UpsertDefault(ctx context.Context, req UpsertConfigRequest) (ConfigResponse, error)

	// UpsertEmployee creates or replaces an employee override
	UpsertEmployee(ctx context.Context, employeeID string, req UpsertConfigRequest) (ConfigResponse, error)
}
