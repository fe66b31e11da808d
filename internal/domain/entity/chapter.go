package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chapter is a single numbered chapter of a novel. (NovelID, ChapterNumber) is unique.
type Chapter struct {
	ID            uuid.UUID
	NovelID       uuid.UUID
	ChapterNumber int
	Title         string
	Content       string
	PublishAt     *time.Time // nil means published immediately
	Coins         int64      // unlock price; zero falls back to the configured default
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPublished reports whether the chapter is free for everyone at now.
// A chapter whose publish time equals now is already published.
func (c *Chapter) IsPublished(now time.Time) bool {
	return c.PublishAt == nil || !c.PublishAt.After(now)
}

// IsAccessible is the single entitlement predicate: a chapter can be read when it
// has no scheduled publish time, the publish time has passed, or the reader holds
// an unlock receipt for it.
func IsAccessible(chapter *Chapter, now time.Time, hasUnlock bool) bool {
	if chapter == nil {
		return false
	}

	return chapter.IsPublished(now) || hasUnlock
}

// ChapterUnlock is the append-only receipt proving a reader paid for early access.
type ChapterUnlock struct {
	ID            uuid.UUID
	ProfileID     uuid.UUID
	NovelID       uuid.UUID
	ChapterNumber int
	Cost          int64
	CreatedAt     time.Time
}
