package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/autoyard/inventory-system/internal/core/domain"
	"github.com/autoyard/inventory-system/internal/core/ports"
)

// VehicleService is the mutation dispatcher for the catalog. Every mutating
// call resolves the acting user from the identity store, asks the domain
// policy whether the operation is permitted, validates the full change set,
// and only then touches the repository, exactly once.
type VehicleService struct {
	vehicles ports.VehicleRepository
	users    ports.UserRepository
	cache    ports.CatalogCache
	logger   zerolog.Logger
}

func NewVehicleService(vehicles ports.VehicleRepository, users ports.UserRepository, cache ports.CatalogCache, logger zerolog.Logger) *VehicleService {
	return &VehicleService{vehicles: vehicles, users: users, cache: cache, logger: logger}
}

// Create adds a vehicle to the catalog. Admin only.
func (s *VehicleService) Create(ctx context.Context, actorID string, input ports.CreateVehicleInput) (string, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return "", err
	}
	if err := domain.AuthorizeCreate(actor); err != nil {
		return "", err
	}

	required := []struct {
		name string
		ok   bool
	}{
		{"make", input.Make != nil},
		{"model", input.Model != nil},
		{"year", input.Year != nil},
		{"color", input.Color != nil},
		{"price", input.Price != nil},
	}
	for _, f := range required {
		if !f.ok {
			return "", &domain.FieldError{Field: f.name, Reason: "is required"}
		}
	}

	if *input.Year < domain.MinYear || *input.Year > domain.MaxYear {
		return "", &domain.FieldError{Field: "year", Reason: "must be between 1900 and 2100"}
	}
	if *input.Price < 0 {
		return "", &domain.FieldError{Field: "price", Reason: "cannot be negative"}
	}

	vehicle := &domain.Vehicle{
		Make:      *input.Make,
		Model:     *input.Model,
		Year:      *input.Year,
		Color:     *input.Color,
		Price:     *input.Price,
		Available: true,
	}
	if input.Available != nil {
		vehicle.Available = *input.Available
	}

	id, err := s.vehicles.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create vehicle")
		return "", err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Str("vehicle_id", id).Str("make", vehicle.Make).Str("model", vehicle.Model).Msg("vehicle created")
	return id, nil
}

// Update applies a change set to a vehicle. The change set is authorized and
// validated in full before the single repository write, so a failing field
// never leaves earlier fields committed.
func (s *VehicleService) Update(ctx context.Context, actorID, vehicleID string, ch domain.VehicleChanges) (*ports.UpdateResult, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.vehicles.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	if err := domain.AuthorizeUpdate(actor, ch); err != nil {
		return nil, err
	}
	if err := ch.Validate(); err != nil {
		return nil, err
	}

	if ch.Empty() {
		// Admin no-op update: nothing to write.
		return &ports.UpdateResult{}, nil
	}

	if err := s.vehicles.Update(ctx, vehicleID, ch); err != nil {
		s.logger.Error().Err(err).Str("vehicle_id", vehicleID).Msg("failed to update vehicle")
		return nil, err
	}

	reserved := !actor.IsAdmin
	s.invalidateCatalog(ctx)
	s.logger.Info().Str("vehicle_id", vehicleID).Bool("reserved", reserved).Msg("vehicle updated")
	return &ports.UpdateResult{Reserved: reserved}, nil
}

// Delete removes a vehicle permanently. Admin only.
func (s *VehicleService) Delete(ctx context.Context, actorID, vehicleID string) error {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeDelete(actor); err != nil {
		return err
	}
	if _, err := s.vehicles.FindByID(ctx, vehicleID); err != nil {
		return err
	}

	if err := s.vehicles.Delete(ctx, vehicleID); err != nil {
		s.logger.Error().Err(err).Str("vehicle_id", vehicleID).Msg("failed to delete vehicle")
		return err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Str("vehicle_id", vehicleID).Msg("vehicle deleted")
	return nil
}

// Get returns a single vehicle. Public.
func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicles.FindByID(ctx, id)
}

// List returns the full catalog. Public. Served through the catalog cache
// when one is configured; cache trouble degrades to a direct read.
func (s *VehicleService) List(ctx context.Context) ([]*domain.Vehicle, error) {
	if s.cache != nil {
		if payload, err := s.cache.Get(ctx); err == nil && payload != nil {
			var cached []*domain.Vehicle
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
		}
	}

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(vehicles); err == nil {
			if err := s.cache.Set(ctx, payload); err != nil {
				s.logger.Warn().Err(err).Msg("catalog cache set failed")
			}
		}
	}
	return vehicles, nil
}

// invalidateCatalog drops the cached list after a successful mutation so the
// next read observes the new state.
func (s *VehicleService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
