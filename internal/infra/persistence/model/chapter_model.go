package model

import (
	"time"

	"github.com/google/uuid"
)

// ChapterModel mirrors the 'chapters' table. (novel_id, chapter_number) is unique.
type ChapterModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NovelID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_chapters_novel_number"`
	ChapterNumber int        `gorm:"not null;uniqueIndex:idx_chapters_novel_number"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Content       string     `gorm:"type:text"`
	PublishAt     *time.Time `gorm:"index"`
	Coins         int64      `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChapterModel) TableName() string {
	return "chapters"
}
