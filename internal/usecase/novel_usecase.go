package usecase

import (
	"context"

	"novelhub/internal/domain/entity"
)

// NovelUsecase serves the novel catalogue.
type NovelUsecase interface {
	ListNovels(ctx context.Context) ([]*entity.Novel, error)
	GetNovel(ctx context.Context, ref string) (*entity.Novel, error)
}
