package impl

import (
	"context"
	"time"

	"novelhub/internal/domain/entity"
	"novelhub/internal/domain/repository"
	"novelhub/internal/usecase"
	"novelhub/internal/util"

	"github.com/pkg/errors"
)

// readerState is the ordered chapter set of one novel together with the reader's
// unlock set, each fetched with a single query.
type readerState struct {
	novel    *entity.Novel
	chapters []*entity.Chapter
	unlocked map[int]struct{}
	now      time.Time
}

func loadReaderState(
	ctx context.Context,
	repos repository.RepositoryFactory,
	reader *entity.Identity,
	novelRef string,
	now time.Time,
) (*readerState, error) {
	novel, err := repos.NewNovelRepository().FindByRef(ctx, novelRef)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve novel %q", novelRef)
	}

	chapters, err := repos.NewChapterRepository().ListByNovel(ctx, novel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chapters")
	}

	state := &readerState{
		novel:    novel,
		chapters: chapters,
		unlocked: map[int]struct{}{},
		now:      now,
	}

	// Anonymous readers cannot own receipts.
	if reader.IsAnonymous() {
		return state, nil
	}

	unlocked, err := repos.NewUnlockRepository().ListChapterNumbers(ctx, reader.UserID, novel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unlocked chapters")
	}
	if unlocked != nil {
		state.unlocked = unlocked
	}

	return state, nil
}

func (s *readerState) hasUnlock(chapterNumber int) bool {
	_, ok := s.unlocked[chapterNumber]

	return ok
}

func (s *readerState) accessible(chapter *entity.Chapter) bool {
	return entity.IsAccessible(chapter, s.now, s.hasUnlock(chapter.ChapterNumber))
}

// accessibleChapters keeps the ascending order of the chapter set.
func (s *readerState) accessibleChapters() []*entity.Chapter {
	result := make([]*entity.Chapter, 0, len(s.chapters))
	for _, chapter := range s.chapters {
		if s.accessible(chapter) {
			result = append(result, chapter)
		}
	}

	return result
}

// navigation returns the nearest accessible chapters below and above current.
func (s *readerState) navigation(current int) usecase.ChapterNavigation {
	var nav usecase.ChapterNavigation
	for _, chapter := range s.accessibleChapters() {
		switch {
		case chapter.ChapterNumber < current:
			nav.Prev = chapterLink(chapter)
		case chapter.ChapterNumber > current && nav.Next == nil:
			nav.Next = chapterLink(chapter)
		}
	}

	return nav
}

func chapterLink(chapter *entity.Chapter) *usecase.ChapterLink {
	return &usecase.ChapterLink{
		ChapterNumber: chapter.ChapterNumber,
		Title:         chapter.Title,
		Slug:          util.ChapterSlug(chapter.ChapterNumber, chapter.Title),
	}
}

// unlockCost is the chapter's own price, or defaultCost when none is stored.
func unlockCost(chapter *entity.Chapter, defaultCost int64) int64 {
	if chapter.Coins > 0 {
		return chapter.Coins
	}

	return defaultCost
}
