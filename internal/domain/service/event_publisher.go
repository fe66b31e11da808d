package service

import (
	"context"
	"time"
)

// ChapterUnlockedEvent is emitted after a reader pays to unlock a chapter.
type ChapterUnlockedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	UnlockID      string    `json:"unlock_id"`
	ProfileID     string    `json:"profile_id"`
	NovelID       string    `json:"novel_id"`
	ChapterNumber int       `json:"chapter_number"`
	Cost          int64     `json:"cost"`
	BeneficiaryID string    `json:"beneficiary_id,omitempty"`
	Share         int64     `json:"share"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishChapterUnlocked publishes an unlock event for downstream consumers
	PublishChapterUnlocked(ctx context.Context, event *ChapterUnlockedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
