// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"novelhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProfileNotFound is returned when no profile matches the given id.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists is returned when a profile with the same id already exists.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrInsufficientCoins is returned by a conditional debit that matched no row
	// because the balance was lower than the requested amount.
	ErrInsufficientCoins = errors.New("insufficient coins")
)

// ProfileRepository defines persistence operations for reader profiles.
// Balance changes are atomic conditional updates; callers never write an absolute balance.
type ProfileRepository interface {
	// FindByID retrieves a profile by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// DebitCoins subtracts amount from the balance only if the balance covers it.
	// Returns ErrInsufficientCoins when no row was affected.
	DebitCoins(ctx context.Context, id uuid.UUID, amount int64) error

	// CreditCoins adds amount to the balance.
	// Returns ErrProfileNotFound when no row was affected.
	CreditCoins(ctx context.Context, id uuid.UUID, amount int64) error
}
