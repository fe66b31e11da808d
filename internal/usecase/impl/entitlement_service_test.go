package impl

import (
	"context"
	"testing"
	"time"

	"novelhub/internal/domain/constants"
	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/infra/persistence/postgres"
	mockRepo "novelhub/internal/mocks/repository"
	mockService "novelhub/internal/mocks/service"
	"novelhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedFiveChapters creates chapters 1..5 where chapter 3 is scheduled in the future.
func seedFiveChapters(t *testing.T, f *catalogFixture) *entity.Novel {
	t.Helper()

	novel := f.seedNovel(t, "five", nil)
	for n := 1; n <= 5; n++ {
		var offset *time.Duration
		if n == 3 {
			offset = durationPtr(24 * time.Hour)
		}
		f.seedChapter(t, novel.ID, n, offset, 0)
	}

	return novel
}

func newEntitlement(f *catalogFixture) usecase.EntitlementUsecase {
	return NewEntitlementService(f.txManager, f.clock(), testConfig(constants.UnlockStrategyTransaction), discardLogger())
}

func chapterNumbers(chapters []*entity.Chapter) []int {
	numbers := make([]int, 0, len(chapters))
	for _, chapter := range chapters {
		numbers = append(numbers, chapter.ChapterNumber)
	}

	return numbers
}

func TestEntitlementService_IsAccessible(t *testing.T) {
	f := newCatalogFixture(t)
	reader := f.seedProfile(t, entity.RoleReader, 0)
	novel := f.seedNovel(t, "iron-path", nil)
	f.seedChapter(t, novel.ID, 1, nil, 0)
	f.seedChapter(t, novel.ID, 2, durationPtr(0), 0)
	f.seedChapter(t, novel.ID, 3, durationPtr(time.Second), 0)
	f.seedChapter(t, novel.ID, 4, durationPtr(time.Hour), 0)

	unlock := &entity.ChapterUnlock{ID: uuid.New(), ProfileID: reader.ID, NovelID: novel.ID, ChapterNumber: 4, Cost: 5}
	require.NoError(t, postgres.NewUnlockRepository(f.db).Create(context.Background(), unlock))

	svc := newEntitlement(f)
	ctx := context.Background()

	tests := []struct {
		name    string
		reader  *entity.Identity
		ref     string
		chapter int
		want    bool
	}{
		{name: "no schedule", reader: nil, ref: "iron-path", chapter: 1, want: true},
		{name: "published exactly now", reader: nil, ref: "iron-path", chapter: 2, want: true},
		{name: "scheduled one second ahead", reader: nil, ref: "iron-path", chapter: 3, want: false},
		{name: "scheduled for reader without unlock", reader: identityOf(reader), ref: "iron-path", chapter: 3, want: false},
		{name: "unlocked by reader", reader: identityOf(reader), ref: novel.ID.String(), chapter: 4, want: true},
		{name: "unlock does not apply to anonymous", reader: nil, ref: "iron-path", chapter: 4, want: false},
		{name: "unknown chapter", reader: identityOf(reader), ref: "iron-path", chapter: 9, want: false},
		{name: "unknown novel", reader: identityOf(reader), ref: "missing", chapter: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsAccessible(ctx, tt.reader, tt.ref, tt.chapter))
		})
	}
}

func TestEntitlementService_ListAccessible(t *testing.T) {
	f := newCatalogFixture(t)
	reader := f.seedProfile(t, entity.RoleReader, 0)
	novel := seedFiveChapters(t, f)
	svc := newEntitlement(f)
	ctx := context.Background()

	assert.Equal(t, []int{1, 2, 4, 5}, chapterNumbers(svc.ListAccessible(ctx, nil, "five")))

	unlock := &entity.ChapterUnlock{ID: uuid.New(), ProfileID: reader.ID, NovelID: novel.ID, ChapterNumber: 3, Cost: 5}
	require.NoError(t, postgres.NewUnlockRepository(f.db).Create(ctx, unlock))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, chapterNumbers(svc.ListAccessible(ctx, identityOf(reader), "five")))
	assert.Empty(t, svc.ListAccessible(ctx, identityOf(reader), "missing"))
}

func TestEntitlementService_ListChapters(t *testing.T) {
	f := newCatalogFixture(t)
	seedFiveChapters(t, f)
	svc := newEntitlement(f)

	listing, err := svc.ListChapters(context.Background(), nil, "five")

	require.NoError(t, err)
	assert.Equal(t, "five", listing.Novel.Slug)
	assert.Equal(t, 4, listing.TotalAccessible)
	require.Len(t, listing.Chapters, 5)
	assert.True(t, listing.Chapters[2].Locked)
	assert.False(t, listing.Chapters[2].Unlocked)
	assert.Equal(t, int64(constants.DefaultChapterCost), listing.Chapters[2].Cost)
	assert.Equal(t, "c3-chapter-title", listing.Chapters[2].Slug)
	assert.NotEmpty(t, listing.Chapters[2].PublishDate)

	_, err = svc.ListChapters(context.Background(), nil, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNovelNotFound)
}

func TestEntitlementService_GetChapter(t *testing.T) {
	f := newCatalogFixture(t)
	seedFiveChapters(t, f)
	svc := newEntitlement(f)
	ctx := context.Background()

	t.Run("accessible chapter carries content and navigation", func(t *testing.T) {
		view, err := svc.GetChapter(ctx, nil, "five", "c2-chapter-title")

		require.NoError(t, err)
		assert.Equal(t, "Once upon a time", view.Content)
		require.NotNil(t, view.Navigation.Prev)
		require.NotNil(t, view.Navigation.Next)
		assert.Equal(t, 1, view.Navigation.Prev.ChapterNumber)
		assert.Equal(t, 4, view.Navigation.Next.ChapterNumber)
		assert.Equal(t, 4, view.TotalAccessible)
	})

	t.Run("locked chapter withholds content", func(t *testing.T) {
		view, err := svc.GetChapter(ctx, nil, "five", "c3")

		require.NoError(t, err)
		assert.True(t, view.Chapter.Locked)
		assert.Empty(t, view.Content)
	})

	t.Run("malformed slug", func(t *testing.T) {
		_, err := svc.GetChapter(ctx, nil, "five", "prologue")

		require.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
	})

	t.Run("missing chapter", func(t *testing.T) {
		_, err := svc.GetChapter(ctx, nil, "five", "c42")

		require.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
	})
}

func TestEntitlementService_AnonymousReaderNeverQueriesUnlocks(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	novel := &entity.Novel{ID: uuid.New(), Slug: "iron-path"}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	novels := mockRepo.NewMockNovelRepository(t)
	chapters := mockRepo.NewMockChapterRepository(t)
	clock := mockService.NewMockClock(t)

	// No UnlockRepository expectation: any unlock lookup fails the test.
	txManager.EXPECT().Repositories().Return(factory)
	factory.EXPECT().NewNovelRepository().Return(novels)
	factory.EXPECT().NewChapterRepository().Return(chapters)
	novels.EXPECT().FindByRef(context.Background(), "iron-path").Return(novel, nil)
	chapters.EXPECT().ListByNovel(context.Background(), novel.ID).Return([]*entity.Chapter{
		{NovelID: novel.ID, ChapterNumber: 1},
		{NovelID: novel.ID, ChapterNumber: 2, PublishAt: &future},
	}, nil)
	chapters.EXPECT().FindByNumber(context.Background(), novel.ID, 2).Return(&entity.Chapter{NovelID: novel.ID, ChapterNumber: 2, PublishAt: &future}, nil)
	clock.EXPECT().Now().Return(now)

	svc := NewEntitlementService(txManager, clock, testConfig(constants.UnlockStrategyTransaction), discardLogger())

	assert.Equal(t, []int{1}, chapterNumbers(svc.ListAccessible(context.Background(), nil, "iron-path")))
	assert.False(t, svc.IsAccessible(context.Background(), nil, "iron-path", 2))
}

func TestEntitlementService_ReadFailureDegrades(t *testing.T) {
	novel := &entity.Novel{ID: uuid.New(), Slug: "iron-path"}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	novels := mockRepo.NewMockNovelRepository(t)
	chapters := mockRepo.NewMockChapterRepository(t)
	clock := mockService.NewMockClock(t)

	txManager.EXPECT().Repositories().Return(factory)
	factory.EXPECT().NewNovelRepository().Return(novels)
	factory.EXPECT().NewChapterRepository().Return(chapters)
	novels.EXPECT().FindByRef(context.Background(), "iron-path").Return(novel, nil)
	chapters.EXPECT().ListByNovel(context.Background(), novel.ID).Return(nil, errors.New("connection refused"))
	clock.EXPECT().Now().Return(time.Now())

	svc := NewEntitlementService(txManager, clock, testConfig(constants.UnlockStrategyTransaction), discardLogger())
	nav := NewNavigationService(txManager, clock, discardLogger())
	reader := &entity.Identity{UserID: uuid.New()}

	assert.Empty(t, svc.ListAccessible(context.Background(), reader, "iron-path"))
	assert.Zero(t, nav.GetTotalChapters(context.Background(), reader, "iron-path"))
	assert.Equal(t, usecase.ChapterNavigation{}, nav.GetChapterNavigation(context.Background(), reader, "iron-path", 1))

	_, err := svc.ListChapters(context.Background(), reader, "iron-path")
	require.ErrorIs(t, err, domainerrors.ErrInternalError)
}
