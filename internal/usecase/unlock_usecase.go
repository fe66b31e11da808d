package usecase

import (
	"context"

	"novelhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UnlockUsecase spends reader coins on early access to a chapter.
type UnlockUsecase interface {
	// UnlockChapter runs the unlock transfer once per (reader, novel, chapter).
	// Repeating it, with or without the same idempotency key, never charges twice.
	UnlockChapter(ctx context.Context, reader *entity.Identity, input *UnlockChapterInput) (*UnlockChapterOutput, error)
}

// --- Input DTOs ---

// UnlockChapterInput defines the data required to unlock a chapter.
type UnlockChapterInput struct {
	NovelRef       string `validate:"required"`
	ChapterNumber  int    `validate:"gt=0"`
	IdempotencyKey string `validate:"omitempty,max=255"`
}

// --- Output DTOs ---

// UnlockChapterOutput reports the result of an unlock.
type UnlockChapterOutput struct {
	UnlockID      uuid.UUID `json:"unlock_id,omitempty"`
	NovelID       uuid.UUID `json:"novel_id"`
	ChapterNumber int       `json:"chapter_number"`
	// Cost is what this call charged; zero when nothing was charged.
	Cost    int64 `json:"cost"`
	Balance int64 `json:"balance"`
	// AlreadyUnlocked is set when the reader held a receipt before this call.
	AlreadyUnlocked bool `json:"already_unlocked"`
	// Free is set when the chapter is already published and needs no unlock.
	Free bool `json:"free"`
	// Replayed is set when the response was served from the idempotency cache.
	Replayed bool `json:"replayed"`
}
