package ports

import (
	"context"

	"github.com/autoyard/inventory-system/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// CountAdmins supports bootstrap seeding; it is not consulted at runtime.
	CountAdmins(ctx context.Context) (int64, error)
}
