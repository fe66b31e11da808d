package model

import (
	"time"

	"github.com/google/uuid"
)

// ChapterUnlockModel mirrors the append-only 'chapter_unlocks' table.
// The composite unique index makes a second receipt for the same chapter impossible.
type ChapterUnlockModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chapter_unlocks_owner"`
	NovelID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chapter_unlocks_owner"`
	ChapterNumber int       `gorm:"not null;uniqueIndex:idx_chapter_unlocks_owner"`
	Cost          int64     `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChapterUnlockModel) TableName() string {
	return "chapter_unlocks"
}
