package ports

import (
	"context"

	"github.com/autoyard/inventory-system/internal/core/domain"
)

// CreateVehicleInput carries all data needed to create a vehicle. Every field
// except Available is required; Available defaults to true when nil.
type CreateVehicleInput struct {
	Make      *string
	Model     *string
	Year      *int
	Color     *string
	Price     *float64
	Available *bool
}

// UpdateResult tells the HTTP layer which success message to render.
type UpdateResult struct {
	// Reserved is true when a non-admin performed the reservation
	// transition (the only mutation they are allowed).
	Reserved bool
}

// VehicleService defines the catalog use cases. Mutations take the acting
// user's ID; the service resolves the user from the identity store on every
// call rather than trusting any role carried by the session token.
type VehicleService interface {
	Create(ctx context.Context, actorID string, input CreateVehicleInput) (string, error)
	Update(ctx context.Context, actorID, vehicleID string, ch domain.VehicleChanges) (*UpdateResult, error)
	Delete(ctx context.Context, actorID, vehicleID string) error
	Get(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}
