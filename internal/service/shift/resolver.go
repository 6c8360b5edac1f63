package shift

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
)

// Resolver looks up the effective shift configuration for an employee.
// Resolution order: employee override, organization default, hard-coded
// fallback. No path returns an error: a broken config store must never
// block check-in or check-out.
type Resolver struct {
	configRepo shift.ConfigRepository
}

func NewResolver(configRepo shift.ConfigRepository) *Resolver {
	return &Resolver{configRepo: configRepo}
}

func (r *Resolver) Resolve(ctx context.Context, employeeID string) shift.Config {
	cfg, err := r.configRepo.GetByEmployeeID(ctx, employeeID)
	if err == nil {
		return cfg
	}
	if !errors.Is(err, shift.ErrShiftConfigNotFound) {
		slog.Warn("Shift config lookup failed, trying organization default",
			"employee_id", employeeID, "error", err)
	}

	cfg, err = r.configRepo.GetDefault(ctx)
	if err == nil {
		return cfg
	}
	if !errors.Is(err, shift.ErrShiftConfigNotFound) {
		slog.Warn("Organization default shift config lookup failed, using built-in defaults",
			"employee_id", employeeID, "error", err)
	}

	return shift.DefaultConfig()
}
