package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"novelhub/internal/domain/entity"
	"novelhub/internal/domain/repository"
	"novelhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, role entity.Role, coins int64) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{
		ID:       uuid.New(),
		Username: "reader-" + uuid.NewString()[:8],
		Role:     role,
		Coins:    coins,
	}
	require.NoError(t, NewProfileRepository(db).Create(context.Background(), profile))

	return profile
}

func seedNovel(t *testing.T, db *gorm.DB, slug string, beneficiary *uuid.UUID) *entity.Novel {
	t.Helper()

	novel := &entity.Novel{
		ID:              uuid.New(),
		Slug:            slug,
		Title:           "Novel " + slug,
		Author:          "Someone",
		AuthorProfileID: beneficiary,
	}
	require.NoError(t, NewNovelRepository(db).Create(context.Background(), novel))

	return novel
}

func seedChapter(t *testing.T, db *gorm.DB, novelID uuid.UUID, number int, publishAt *time.Time) *entity.Chapter {
	t.Helper()

	chapter := &entity.Chapter{
		ID:            uuid.New(),
		NovelID:       novelID,
		ChapterNumber: number,
		Title:         "Chapter",
		Content:       "content",
		PublishAt:     publishAt,
		Coins:         5,
	}
	require.NoError(t, NewChapterRepository(db).Create(context.Background(), chapter))

	return chapter
}

func TestProfileRepository_DebitCoins(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	profile := seedProfile(t, db, entity.RoleReader, 10)

	require.NoError(t, repo.DebitCoins(ctx, profile.ID, 5))

	got, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Coins)
}

func TestProfileRepository_DebitCoins_Insufficient(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	profile := seedProfile(t, db, entity.RoleReader, 3)

	err := repo.DebitCoins(ctx, profile.ID, 5)

	require.ErrorIs(t, err, repository.ErrInsufficientCoins)

	got, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Coins)
}

func TestProfileRepository_DebitCoins_ConcurrentNeverOverdraws(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	profile := seedProfile(t, db, entity.RoleReader, 10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.DebitCoins(ctx, profile.ID, 5); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, int64(0), got.Coins)
}

func TestProfileRepository_CreditCoins_MissingProfile(t *testing.T) {
	db := newTestDB(t)

	err := NewProfileRepository(db).CreditCoins(context.Background(), uuid.New(), 4)

	require.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	profile := seedProfile(t, db, entity.RoleReader, 0)

	err := NewProfileRepository(db).Create(context.Background(), &entity.Profile{
		ID:       profile.ID,
		Username: "again",
		Role:     entity.RoleReader,
	})

	require.ErrorIs(t, err, repository.ErrProfileAlreadyExists)
}

func TestNovelRepository_FindByRef(t *testing.T) {
	db := newTestDB(t)
	repo := NewNovelRepository(db)
	ctx := context.Background()
	novel := seedNovel(t, db, "iron-path", nil)

	byID, err := repo.FindByRef(ctx, novel.ID.String())
	require.NoError(t, err)
	assert.Equal(t, novel.ID, byID.ID)

	bySlug, err := repo.FindByRef(ctx, "iron-path")
	require.NoError(t, err)
	assert.Equal(t, novel.ID, bySlug.ID)

	_, err = repo.FindByRef(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNovelNotFound)

	_, err = repo.FindByRef(ctx, "")
	require.ErrorIs(t, err, repository.ErrNovelNotFound)
}

func TestChapterRepository_ListByNovelOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewChapterRepository(db)
	ctx := context.Background()
	novel := seedNovel(t, db, "ordered", nil)

	for _, n := range []int{3, 1, 2} {
		seedChapter(t, db, novel.ID, n, nil)
	}

	chapters, err := repo.ListByNovel(ctx, novel.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{chapters[0].ChapterNumber, chapters[1].ChapterNumber, chapters[2].ChapterNumber})

	_, err = repo.FindByNumber(ctx, novel.ID, 9)
	require.ErrorIs(t, err, repository.ErrChapterNotFound)

	err = repo.Create(ctx, &entity.Chapter{ID: uuid.New(), NovelID: novel.ID, ChapterNumber: 1, Title: "dup"})
	require.ErrorIs(t, err, repository.ErrChapterAlreadyExists)
}

func TestUnlockRepository_UniqueReceipt(t *testing.T) {
	db := newTestDB(t)
	repo := NewUnlockRepository(db)
	ctx := context.Background()
	reader := seedProfile(t, db, entity.RoleReader, 0)
	novel := seedNovel(t, db, "unique", nil)

	first := &entity.ChapterUnlock{ID: uuid.New(), ProfileID: reader.ID, NovelID: novel.ID, ChapterNumber: 4, Cost: 5}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.ChapterUnlock{ID: uuid.New(), ProfileID: reader.ID, NovelID: novel.ID, ChapterNumber: 4, Cost: 5}
	require.ErrorIs(t, repo.Create(ctx, second), repository.ErrUnlockAlreadyExists)

	found, err := repo.Find(ctx, reader.ID, novel.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	numbers, err := repo.ListChapterNumbers(ctx, reader.ID, novel.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int]struct{}{4: {}}, numbers)

	_, err = repo.Find(ctx, reader.ID, novel.ID, 5)
	require.ErrorIs(t, err, repository.ErrUnlockNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	reader := seedProfile(t, db, entity.RoleReader, 10)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewProfileRepository().DebitCoins(ctx, reader.ID, 5); err != nil {
			return err
		}

		return repository.ErrUnlockAlreadyExists
	})
	require.ErrorIs(t, err, repository.ErrUnlockAlreadyExists)

	got, err := tm.Repositories().NewProfileRepository().FindByID(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Coins)
}
