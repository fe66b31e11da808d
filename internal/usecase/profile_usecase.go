package usecase

import (
	"context"

	"novelhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase manages reader profiles.
type ProfileUsecase interface {
	// EnsureProfile returns the profile of an authenticated reader, creating it on first sign-in.
	EnsureProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)
}

// ProfileOutput is the public view of a profile.
type ProfileOutput struct {
	ID            uuid.UUID   `json:"id"`
	Username      string      `json:"username"`
	AvatarURL     string      `json:"avatar_url,omitempty"`
	Role          entity.Role `json:"role"`
	Coins         int64       `json:"coins"`
	CurrentStreak int         `json:"current_streak"`
}

// NewProfileOutput maps a profile entity to its public view.
func NewProfileOutput(profile *entity.Profile) *ProfileOutput {
	return &ProfileOutput{
		ID:            profile.ID,
		Username:      profile.Username,
		AvatarURL:     profile.AvatarURL,
		Role:          profile.Role,
		Coins:         profile.Coins,
		CurrentStreak: profile.CurrentStreak,
	}
}
