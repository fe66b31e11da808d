package impl

import (
	"context"
	"log/slog"

	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/domain/entity"
	"novelhub/internal/domain/repository"
	"novelhub/internal/domain/service"
	"novelhub/internal/usecase"

	"github.com/pkg/errors"
)

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(txManager repository.TransactionManager, clock service.Clock, logger *slog.Logger) usecase.NavigationUsecase {
	return &navigationService{
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

// GetChapterNavigation returns empty navigation when the novel cannot be read.
func (srv *navigationService) GetChapterNavigation(ctx context.Context, reader *entity.Identity, novelRef string, current int) usecase.ChapterNavigation {
	state, err := srv.load(ctx, reader, novelRef)
	if err != nil {
		return usecase.ChapterNavigation{}
	}

	return state.navigation(current)
}

// GetTotalChapters returns zero when the novel cannot be read.
func (srv *navigationService) GetTotalChapters(ctx context.Context, reader *entity.Identity, novelRef string) int {
	state, err := srv.load(ctx, reader, novelRef)
	if err != nil {
		return 0
	}

	return len(state.accessibleChapters())
}

func (srv *navigationService) load(ctx context.Context, reader *entity.Identity, novelRef string) (*readerState, error) {
	state, err := loadReaderState(ctx, srv.txManager.Repositories(), reader, novelRef, srv.clock.Now())
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, repository.ErrNovelNotFound) {
			level = slog.LevelDebug
		}
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).LogAttrs(ctx, level, "Navigation read degraded",
			slog.String("novelRef", novelRef),
			slog.Any("error", err),
		)

		return nil, err
	}

	return state, nil
}
