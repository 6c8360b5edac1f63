package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/database"
	"github.com/sanketsmane/ems-backend-go/internal/repository/postgresql"
)

type ConfigServiceImpl struct {
	db *database.DB
	shift.ConfigRepository
	resolver *Resolver
}

func NewConfigService(db *database.DB, configRepo shift.ConfigRepository, resolver *Resolver) shift.ConfigService {
	return &ConfigServiceImpl{
		db:               db,
		ConfigRepository: configRepo,
		resolver:         resolver,
	}
}

// inTransaction runs fn inside a database transaction; the repository
// upsert is an update-then-insert pair that must not interleave. Unit
// tests construct the service over in-memory repositories without a
// pool; fn runs directly then.
func (s *ConfigServiceImpl) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

// GetMyConfig implements shift.ConfigService.
func (s *ConfigServiceImpl) GetMyConfig(ctx context.Context) (shift.ConfigResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return shift.ConfigResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return shift.ConfigResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	return shift.NewConfigResponse(s.resolver.Resolve(ctx, employeeID)), nil
}

// GetEffective implements shift.ConfigService.
func (s *ConfigServiceImpl) GetEffective(ctx context.Context, employeeID string) (shift.ConfigResponse, error) {
	return shift.NewConfigResponse(s.resolver.Resolve(ctx, employeeID)), nil
}

// GetDefault implements shift.ConfigService.
func (s *ConfigServiceImpl) GetDefault(ctx context.Context) (shift.ConfigResponse, error) {
	cfg, err := s.ConfigRepository.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, shift.ErrShiftConfigNotFound) {
			return shift.NewConfigResponse(shift.DefaultConfig()), nil
		}
		return shift.ConfigResponse{}, fmt.Errorf("failed to get default shift config: %w", err)
	}

	return shift.NewConfigResponse(cfg), nil
}

// UpsertDefault implements shift.ConfigService.
func (s *ConfigServiceImpl) UpsertDefault(ctx context.Context, req shift.UpsertConfigRequest) (shift.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ConfigResponse{}, err
	}

	var cfg shift.Config
	err := s.inTransaction(ctx, func(ctx context.Context) error {
		var err error
		cfg, err = s.ConfigRepository.Upsert(ctx, configFromRequest(nil, req))
		if err != nil {
			return fmt.Errorf("failed to upsert default shift config: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ConfigResponse{}, err
	}

	return shift.NewConfigResponse(cfg), nil
}

// UpsertEmployee implements shift.ConfigService.
func (s *ConfigServiceImpl) UpsertEmployee(ctx context.Context, employeeID string, req shift.UpsertConfigRequest) (shift.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ConfigResponse{}, err
	}

	var cfg shift.Config
	err := s.inTransaction(ctx, func(ctx context.Context) error {
		var err error
		cfg, err = s.ConfigRepository.Upsert(ctx, configFromRequest(&employeeID, req))
		if err != nil {
			return fmt.Errorf("failed to upsert employee shift config: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ConfigResponse{}, err
	}

	return shift.NewConfigResponse(cfg), nil
}

func configFromRequest(employeeID *string, req shift.UpsertConfigRequest) shift.Config {
	return shift.Config{
		EmployeeID:            employeeID,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		LateThresholdMinutes:  req.LateThresholdMinutes,
		HalfDayThresholdHours: req.HalfDayThresholdHours,
		WorkingDays:           req.WorkingDays,
		BreakDurationMinutes:  req.BreakDurationMinutes,
	}
}
