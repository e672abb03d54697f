package ports

import (
	"context"

	"github.com/autoyard/inventory-system/internal/core/domain"
)

// VehicleRepository defines persistence operations for the catalog.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	// Update applies all supplied fields in one atomic document write; a
	// concurrent reader never observes a subset of the change set.
	Update(ctx context.Context, id string, ch domain.VehicleChanges) error
	Delete(ctx context.Context, id string) error
}
