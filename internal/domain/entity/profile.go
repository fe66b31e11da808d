// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user record holding the coin balance and role.
// Its ID equals the auth backend's user id.
type Profile struct {
	ID            uuid.UUID
	Username      string
	AvatarURL     string
	DiscordID     string
	Role          Role
	Coins         int64 // never negative
	CurrentStreak int
	LastVisit     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanAfford reports whether the profile holds at least cost coins.
func (p *Profile) CanAfford(cost int64) bool {
	return p != nil && p.Coins >= cost
}
