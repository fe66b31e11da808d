package repository

import (
	"context"
	"errors"

	"novelhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUnlockNotFound is returned when the reader holds no receipt for the chapter.
	ErrUnlockNotFound = errors.New("chapter unlock not found")

	// ErrUnlockAlreadyExists is returned when the unique receipt key is already taken.
	ErrUnlockAlreadyExists = errors.New("chapter unlock already exists")
)

// UnlockRepository persists chapter unlock receipts. Receipts are append-only.
type UnlockRepository interface {
	// Find returns the receipt for (profile, novel, chapter) or ErrUnlockNotFound.
	Find(ctx context.Context, profileID, novelID uuid.UUID, chapterNumber int) (*entity.ChapterUnlock, error)

	// ListChapterNumbers returns the set of chapter numbers the profile unlocked in a novel.
	ListChapterNumbers(ctx context.Context, profileID, novelID uuid.UUID) (map[int]struct{}, error)

	// Create inserts a new receipt. Returns ErrUnlockAlreadyExists on a unique-key conflict.
	Create(ctx context.Context, unlock *entity.ChapterUnlock) error
}
