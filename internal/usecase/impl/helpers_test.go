package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"novelhub/config"
	"novelhub/internal/domain/entity"
	"novelhub/internal/domain/repository"
	"novelhub/internal/infra/persistence/model"
	"novelhub/internal/infra/persistence/postgres"
	"novelhub/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// catalogFixture is an in-memory SQLite catalogue shared by the service tests.
type catalogFixture struct {
	db        *gorm.DB
	txManager repository.TransactionManager
	now       time.Time
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	db, err := sqlite.OpenInMemory(uuid.NewString())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	return &catalogFixture{
		db:        db,
		txManager: postgres.NewTransactionManager(db),
		now:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *catalogFixture) clock() fixedClock {
	return fixedClock{now: f.now}
}

func (f *catalogFixture) seedProfile(t *testing.T, role entity.Role, coins int64) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{
		ID:       uuid.New(),
		Username: "profile-" + uuid.NewString()[:8],
		Role:     role,
		Coins:    coins,
	}
	require.NoError(t, postgres.NewProfileRepository(f.db).Create(context.Background(), profile))

	return profile
}

func (f *catalogFixture) seedNovel(t *testing.T, slug string, beneficiary *uuid.UUID) *entity.Novel {
	t.Helper()

	novel := &entity.Novel{
		ID:              uuid.New(),
		Slug:            slug,
		Title:           "Title of " + slug,
		Author:          "Pen Name",
		AuthorProfileID: beneficiary,
	}
	require.NoError(t, postgres.NewNovelRepository(f.db).Create(context.Background(), novel))

	return novel
}

// seedChapter creates a chapter published at now+offset; a nil offset means no schedule.
func (f *catalogFixture) seedChapter(t *testing.T, novelID uuid.UUID, number int, offset *time.Duration, coins int64) *entity.Chapter {
	t.Helper()

	chapter := &entity.Chapter{
		ID:            uuid.New(),
		NovelID:       novelID,
		ChapterNumber: number,
		Title:         "Chapter Title",
		Content:       "Once upon a time",
		Coins:         coins,
	}
	if offset != nil {
		publishAt := f.now.Add(*offset)
		chapter.PublishAt = &publishAt
	}
	require.NoError(t, postgres.NewChapterRepository(f.db).Create(context.Background(), chapter))

	return chapter
}

func (f *catalogFixture) balance(t *testing.T, profileID uuid.UUID) int64 {
	t.Helper()

	profile, err := postgres.NewProfileRepository(f.db).FindByID(context.Background(), profileID)
	require.NoError(t, err)

	return profile.Coins
}

func (f *catalogFixture) unlockCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(&model.ChapterUnlockModel{}).Count(&count).Error)

	return count
}

func identityOf(profile *entity.Profile) *entity.Identity {
	return &entity.Identity{UserID: profile.ID}
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func testConfig(strategy string) *config.Config {
	cfg := &config.Config{}
	cfg.Unlock.DefaultCost = 5
	cfg.Unlock.Strategy = strategy
	cfg.Unlock.RevenueShare = config.RevenueShareConfig{Mode: "ratio", Ratio: "0.8"}

	return cfg
}

// faultyTxManager decorates every repository scope handed out by the inner manager.
type faultyTxManager struct {
	repository.TransactionManager
	wrap func(repository.RepositoryFactory) repository.RepositoryFactory
}

func (m *faultyTxManager) Repositories() repository.RepositoryFactory {
	return m.wrap(m.TransactionManager.Repositories())
}

func (m *faultyTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.TransactionManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return fn(m.wrap(repos))
	})
}

type faultyFactory struct {
	repository.RepositoryFactory
	failCreditFor uuid.UUID
	creditErr     error
	beforeRecord  func(ctx context.Context, unlocks repository.UnlockRepository, unlock *entity.ChapterUnlock)
}

func (f *faultyFactory) NewProfileRepository() repository.ProfileRepository {
	return &faultyProfiles{
		ProfileRepository: f.RepositoryFactory.NewProfileRepository(),
		failCreditFor:     f.failCreditFor,
		creditErr:         f.creditErr,
	}
}

func (f *faultyFactory) NewUnlockRepository() repository.UnlockRepository {
	return &faultyUnlocks{
		UnlockRepository: f.RepositoryFactory.NewUnlockRepository(),
		beforeRecord:     f.beforeRecord,
	}
}

type faultyProfiles struct {
	repository.ProfileRepository
	failCreditFor uuid.UUID
	creditErr     error
}

func (p *faultyProfiles) CreditCoins(ctx context.Context, id uuid.UUID, amount int64) error {
	if p.creditErr != nil && id == p.failCreditFor {
		return p.creditErr
	}

	return p.ProfileRepository.CreditCoins(ctx, id, amount)
}

type faultyUnlocks struct {
	repository.UnlockRepository
	beforeRecord func(ctx context.Context, unlocks repository.UnlockRepository, unlock *entity.ChapterUnlock)
}

func (u *faultyUnlocks) Create(ctx context.Context, unlock *entity.ChapterUnlock) error {
	if u.beforeRecord != nil {
		u.beforeRecord(ctx, u.UnlockRepository, unlock)
	}

	return u.UnlockRepository.Create(ctx, unlock)
}
