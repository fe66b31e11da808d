package impl

import (
	"context"
	"log/slog"

	"novelhub/config"
	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/domain/repository"
	"novelhub/internal/domain/service"
	"novelhub/internal/usecase"
	"novelhub/internal/util"

	"github.com/pkg/errors"
)

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	txManager   repository.TransactionManager
	clock       service.Clock
	defaultCost int64
	logger      *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(
	txManager repository.TransactionManager,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EntitlementUsecase {
	return &entitlementService{
		txManager:   txManager,
		clock:       clock,
		defaultCost: cfg.Unlock.DefaultCost,
		logger:      logger,
	}
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IsAccessible checks one chapter without loading the whole chapter set.
func (srv *entitlementService) IsAccessible(ctx context.Context, reader *entity.Identity, novelRef string, chapterNumber int) bool {
	repos := srv.txManager.Repositories()

	novel, err := repos.NewNovelRepository().FindByRef(ctx, novelRef)
	if err != nil {
		srv.logReadFailure(ctx, "IsAccessible", novelRef, err)

		return false
	}

	chapter, err := repos.NewChapterRepository().FindByNumber(ctx, novel.ID, chapterNumber)
	if err != nil {
		srv.logReadFailure(ctx, "IsAccessible", novelRef, err)

		return false
	}

	now := srv.clock.Now()
	if chapter.IsPublished(now) || reader.IsAnonymous() {
		return entity.IsAccessible(chapter, now, false)
	}

	_, err = repos.NewUnlockRepository().Find(ctx, reader.UserID, novel.ID, chapterNumber)
	switch {
	case err == nil:
		return entity.IsAccessible(chapter, now, true)
	case errors.Is(err, repository.ErrUnlockNotFound):
		return false
	default:
		srv.logReadFailure(ctx, "IsAccessible", novelRef, err)

		return false
	}
}

// ListAccessible returns readable chapters ascending by number, or an empty list.
func (srv *entitlementService) ListAccessible(ctx context.Context, reader *entity.Identity, novelRef string) []*entity.Chapter {
	state, err := loadReaderState(ctx, srv.txManager.Repositories(), reader, novelRef, srv.clock.Now())
	if err != nil {
		srv.logReadFailure(ctx, "ListAccessible", novelRef, err)

		return []*entity.Chapter{}
	}

	return state.accessibleChapters()
}

// ListChapters lists every chapter with its lock state and effective price.
func (srv *entitlementService) ListChapters(ctx context.Context, reader *entity.Identity, novelRef string) (*usecase.ChapterListing, error) {
	state, err := loadReaderState(ctx, srv.txManager.Repositories(), reader, novelRef, srv.clock.Now())
	if err != nil {
		return nil, srv.readError(ctx, "ListChapters", novelRef, err)
	}

	listing := &usecase.ChapterListing{
		Novel:    usecase.NewNovelSummary(state.novel),
		Chapters: make([]usecase.ChapterItem, 0, len(state.chapters)),
	}
	for _, chapter := range state.chapters {
		accessible := state.accessible(chapter)
		if accessible {
			listing.TotalAccessible++
		}
		listing.Chapters = append(listing.Chapters, usecase.NewChapterItem(
			chapter,
			unlockCost(chapter, srv.defaultCost),
			!accessible,
			state.hasUnlock(chapter.ChapterNumber),
		))
	}

	return listing, nil
}

// GetChapter returns a chapter page with navigation. A locked chapter is returned
// without content so that the client can offer the unlock.
func (srv *entitlementService) GetChapter(ctx context.Context, reader *entity.Identity, novelRef, chapterSlug string) (*usecase.ChapterView, error) {
	chapterNumber, err := util.ParseChapterSlug(chapterSlug)
	if err != nil {
		return nil, domainerrors.ErrChapterNotFound.WithDetails(err.Error())
	}

	repos := srv.txManager.Repositories()

	state, err := loadReaderState(ctx, repos, reader, novelRef, srv.clock.Now())
	if err != nil {
		return nil, srv.readError(ctx, "GetChapter", novelRef, err)
	}

	var listed *entity.Chapter
	for _, chapter := range state.chapters {
		if chapter.ChapterNumber == chapterNumber {
			listed = chapter

			break
		}
	}
	if listed == nil {
		return nil, domainerrors.ErrChapterNotFound
	}

	accessible := state.accessible(listed)
	view := &usecase.ChapterView{
		Novel: usecase.NewNovelSummary(state.novel),
		Chapter: usecase.NewChapterItem(
			listed,
			unlockCost(listed, srv.defaultCost),
			!accessible,
			state.hasUnlock(chapterNumber),
		),
		Navigation:      state.navigation(chapterNumber),
		TotalAccessible: len(state.accessibleChapters()),
	}

	if accessible {
		// Listings omit content, so the body is loaded separately.
		chapter, err := repos.NewChapterRepository().FindByNumber(ctx, state.novel.ID, chapterNumber)
		if err != nil {
			return nil, srv.readError(ctx, "GetChapter", novelRef, err)
		}
		view.Content = chapter.Content
	}

	return view, nil
}

func (srv *entitlementService) readError(ctx context.Context, op, novelRef string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNovelNotFound):
		return domainerrors.ErrNovelNotFound
	case errors.Is(err, repository.ErrChapterNotFound):
		return domainerrors.ErrChapterNotFound
	}

	srv.logReadFailure(ctx, op, novelRef, err)

	return domainerrors.ErrInternalError.WrapMessage(op + " failed")
}

func (srv *entitlementService) logReadFailure(ctx context.Context, op, novelRef string, err error) {
	level := slog.LevelError
	if errors.Is(err, repository.ErrNovelNotFound) || errors.Is(err, repository.ErrChapterNotFound) {
		level = slog.LevelDebug
	}

	srv.log(ctx).LogAttrs(ctx, level, "Entitlement read degraded",
		slog.String("operation", op),
		slog.String("novelRef", novelRef),
		slog.Any("error", err),
	)
}
