package persistence

import (
	"context"
	"testing"
	"time"

	"novelhub/config"
	"novelhub/internal/domain/entity"
	"novelhub/internal/infra/persistence/postgres"
	"novelhub/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.OpenInMemory(uuid.NewString())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(ctx, db))

	txManager := postgres.NewTransactionManager(db)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	readerID := uuid.New()

	require.NoError(t, SeedDemo(ctx, txManager, now, readerID))
	// A second run leaves the existing demo data untouched.
	require.NoError(t, SeedDemo(ctx, txManager, now, readerID))

	repos := txManager.Repositories()

	novels, err := repos.NewNovelRepository().List(ctx)
	require.NoError(t, err)
	require.Len(t, novels, 1)
	novel := novels[0]
	assert.Equal(t, "the-lantern-road", novel.Slug)
	require.True(t, novel.HasBeneficiary())

	author, err := repos.NewProfileRepository().FindByID(ctx, *novel.AuthorProfileID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAuthor, author.Role)

	reader, err := repos.NewProfileRepository().FindByID(ctx, readerID)
	require.NoError(t, err)
	assert.Equal(t, int64(demoReaderCoins), reader.Coins)

	chapters, err := repos.NewChapterRepository().ListByNovel(ctx, novel.ID)
	require.NoError(t, err)
	require.Len(t, chapters, demoChapterCount)

	scheduled := 0
	for _, chapter := range chapters {
		if !chapter.IsPublished(now) {
			scheduled++
		}
	}
	assert.Equal(t, demoScheduledCount, scheduled)
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	params := postgres.Params{Config: testConfig("oracle")}

	_, err := NewDatabase(params)

	assert.ErrorContains(t, err, "unknown database driver")
}

func testConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Database.Driver = driver

	return cfg
}
