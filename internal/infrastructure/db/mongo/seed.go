package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/autoyard/inventory-system/internal/core/domain"
)

// sampleVehicles is the starter catalog inserted alongside the first admin.
var sampleVehicles = []domain.Vehicle{
	{Make: "Toyota", Model: "Camry", Year: 2022, Color: "Blue", Price: 25000, Available: true},
	{Make: "Honda", Model: "Civic", Year: 2023, Color: "Red", Price: 22000, Available: true},
	{Make: "Ford", Model: "Mustang", Year: 2021, Color: "Black", Price: 35000, Available: true},
	{Make: "Tesla", Model: "Model 3", Year: 2023, Color: "White", Price: 45000, Available: true},
	{Make: "BMW", Model: "X5", Year: 2022, Color: "Silver", Price: 60000, Available: true},
}

// Seed guarantees that at least one admin user exists after bootstrap. When
// the store has no admin it creates one with the given credentials and loads
// the sample catalog. Idempotent: a store that already has an admin is left
// untouched.
func Seed(ctx context.Context, users *MongoUserRepository, vehicles *MongoVehicleRepository, adminUsername, adminPassword string, log zerolog.Logger) error {
	admins, err := users.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if admins > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	admin := &domain.User{
		Username:     adminUsername,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := users.Create(ctx, admin); err != nil {
		// Another instance may have seeded concurrently.
		if err == domain.ErrUserExists {
			return nil
		}
		return fmt.Errorf("seed: create admin: %w", err)
	}

	for _, v := range sampleVehicles {
		vehicle := v
		if _, err := vehicles.Create(ctx, &vehicle); err != nil {
			return fmt.Errorf("seed: create vehicle %s %s: %w", v.Make, v.Model, err)
		}
	}

	log.Info().Str("admin", adminUsername).Int("vehicles", len(sampleVehicles)).Msg("seeded initial data")
	return nil
}
