package model

import (
	"time"

	"github.com/google/uuid"
)

// NovelModel mirrors the 'novels' table.
type NovelModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Slug            string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Author          string     `gorm:"type:varchar(255)"`
	Description     string     `gorm:"type:text"`
	CoverImageURL   string     `gorm:"type:text"`
	AuthorProfileID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	AuthorProfile *ProfileModel  `gorm:"foreignKey:AuthorProfileID"`
	Chapters      []ChapterModel `gorm:"foreignKey:NovelID"`
}

// TableName explicitly sets the table name for GORM.
func (NovelModel) TableName() string {
	return "novels"
}
