package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The id is the auth backend's user id.
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username      string    `gorm:"type:varchar(100);not null"`
	AvatarURL     string    `gorm:"type:text"`
	DiscordID     string    `gorm:"type:varchar(64);index"`
	Role          string    `gorm:"type:varchar(16);not null"`
	Coins         int64     `gorm:"not null;default:0;check:chk_profiles_coins_non_negative,coins >= 0"`
	CurrentStreak int       `gorm:"not null;default:0"`
	LastVisit     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
