package repository

import (
	"context"
	"errors"

	"novelhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrChapterNotFound is returned when (novel, chapter number) matches no chapter.
	ErrChapterNotFound = errors.New("chapter not found")

	// ErrChapterAlreadyExists is returned when the chapter number is taken within the novel.
	ErrChapterAlreadyExists = errors.New("chapter already exists")
)

// ChapterRepository defines operations over chapters.
type ChapterRepository interface {
	// FindByNumber retrieves one chapter of a novel.
	FindByNumber(ctx context.Context, novelID uuid.UUID, number int) (*entity.Chapter, error)

	// ListByNovel returns every chapter of a novel ordered by chapter number ascending.
	ListByNovel(ctx context.Context, novelID uuid.UUID) ([]*entity.Chapter, error)

	// Create persists a new chapter.
	Create(ctx context.Context, chapter *entity.Chapter) error
}
