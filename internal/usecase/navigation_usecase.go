package usecase

import (
	"context"

	"novelhub/internal/domain/entity"
)

// NavigationUsecase assembles pagination data over the accessible chapter subset.
type NavigationUsecase interface {
	// GetChapterNavigation returns the accessible neighbours of current. Locked
	// chapters are skipped.
	GetChapterNavigation(ctx context.Context, reader *entity.Identity, novelRef string, current int) ChapterNavigation

	// GetTotalChapters counts the chapters the reader may read.
	GetTotalChapters(ctx context.Context, reader *entity.Identity, novelRef string) int
}
