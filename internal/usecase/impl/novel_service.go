package impl

import (
	"context"
	"log/slog"

	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/domain/repository"
	"novelhub/internal/usecase"

	"github.com/pkg/errors"
)

// novelService implements the NovelUsecase interface.
type novelService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNovelService is the constructor for novelService.
func NewNovelService(txManager repository.TransactionManager, logger *slog.Logger) usecase.NovelUsecase {
	return &novelService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *novelService) ListNovels(ctx context.Context) ([]*entity.Novel, error) {
	novels, err := srv.txManager.Repositories().NewNovelRepository().List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list novels")
	}

	return novels, nil
}

func (srv *novelService) GetNovel(ctx context.Context, ref string) (*entity.Novel, error) {
	novel, err := srv.txManager.Repositories().NewNovelRepository().FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNovelNotFound) {
			return nil, domainerrors.ErrNovelNotFound
		}

		return nil, errors.Wrap(err, "failed to get novel")
	}

	return novel, nil
}
