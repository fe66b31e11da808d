package impl

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"novelhub/internal/domain/constants"
	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/domain/repository"
	"novelhub/internal/domain/service"
	"novelhub/internal/infra/idempotency"
	mockService "novelhub/internal/mocks/service"
	"novelhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var strategies = []string{constants.UnlockStrategyTransaction, constants.UnlockStrategySaga}

type unlockFixture struct {
	*catalogFixture
	service   usecase.UnlockUsecase
	publisher *mockService.MockEventPublisher
	events    []*service.ChapterUnlockedEvent
	mu        sync.Mutex
}

func newUnlockFixture(t *testing.T, strategy string) *unlockFixture {
	return newUnlockFixtureWith(t, newCatalogFixture(t), strategy, nil)
}

// newUnlockFixtureWith builds the service over catalog; a nil txManager uses the catalog's own.
func newUnlockFixtureWith(t *testing.T, catalog *catalogFixture, strategy string, txManager repository.TransactionManager) *unlockFixture {
	t.Helper()

	if txManager == nil {
		txManager = catalog.txManager
	}

	store, err := idempotency.Open(filepath.Join(t.TempDir(), "idempotency.db"), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &unlockFixture{
		catalogFixture: catalog,
		publisher:      mockService.NewMockEventPublisher(t),
	}
	f.publisher.EXPECT().
		PublishChapterUnlocked(mock.Anything, mock.AnythingOfType("*service.ChapterUnlockedEvent")).
		Run(func(_ context.Context, event *service.ChapterUnlockedEvent) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, event)
		}).
		Return(nil).
		Maybe()

	svc, err := NewUnlockService(UnlockServiceParams{
		TxManager:   txManager,
		Idempotency: store,
		Publisher:   f.publisher,
		Clock:       catalog.clock(),
		Config:      testConfig(strategy),
		Logger:      discardLogger(),
	})
	require.NoError(t, err)
	f.service = svc

	return f
}

func TestUnlockService_RevenueShareScenario(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy, func(t *testing.T) {
			f := newUnlockFixture(t, strategy)
			author := f.seedProfile(t, entity.RoleAuthor, 0)
			reader := f.seedProfile(t, entity.RoleReader, 10)
			novel := f.seedNovel(t, "iron-path", &author.ID)
			f.seedChapter(t, novel.ID, 7, durationPtr(48*time.Hour), 5)

			out, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
				NovelRef:      "iron-path",
				ChapterNumber: 7,
			})

			require.NoError(t, err)
			assert.False(t, out.AlreadyUnlocked)
			assert.Equal(t, int64(5), out.Cost)
			assert.Equal(t, int64(5), out.Balance)
			assert.NotEqual(t, uuid.Nil, out.UnlockID)

			assert.Equal(t, int64(5), f.balance(t, reader.ID))
			assert.Equal(t, int64(4), f.balance(t, author.ID))
			assert.Equal(t, int64(1), f.unlockCount(t))

			entitlement := NewEntitlementService(f.txManager, f.clock(), testConfig(strategy), discardLogger())
			assert.True(t, entitlement.IsAccessible(context.Background(), identityOf(reader), novel.ID.String(), 7))

			require.Len(t, f.events, 1)
			assert.Equal(t, author.ID.String(), f.events[0].BeneficiaryID)
			assert.Equal(t, int64(4), f.events[0].Share)
		})
	}
}

func TestUnlockService_InsufficientCoinsRejectedBeforeAnyWrite(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy, func(t *testing.T) {
			f := newUnlockFixture(t, strategy)
			author := f.seedProfile(t, entity.RoleAuthor, 0)
			reader := f.seedProfile(t, entity.RoleReader, 3)
			novel := f.seedNovel(t, "iron-path", &author.ID)
			f.seedChapter(t, novel.ID, 7, durationPtr(48*time.Hour), 5)

			out, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
				NovelRef:      novel.ID.String(),
				ChapterNumber: 7,
			})

			require.ErrorIs(t, err, domainerrors.ErrInsufficientCoins)
			assert.Nil(t, out)
			assert.Equal(t, int64(3), f.balance(t, reader.ID))
			assert.Equal(t, int64(0), f.balance(t, author.ID))
			assert.Zero(t, f.unlockCount(t))
			assert.Empty(t, f.events)
		})
	}
}

func TestUnlockService_RepeatedUnlockChargesOnce(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy, func(t *testing.T) {
			f := newUnlockFixture(t, strategy)
			author := f.seedProfile(t, entity.RoleAuthor, 0)
			reader := f.seedProfile(t, entity.RoleReader, 10)
			novel := f.seedNovel(t, "iron-path", &author.ID)
			f.seedChapter(t, novel.ID, 7, durationPtr(time.Hour), 5)

			input := &usecase.UnlockChapterInput{NovelRef: "iron-path", ChapterNumber: 7}
			first, err := f.service.UnlockChapter(context.Background(), identityOf(reader), input)
			require.NoError(t, err)

			second, err := f.service.UnlockChapter(context.Background(), identityOf(reader), input)
			require.NoError(t, err)

			assert.True(t, second.AlreadyUnlocked)
			assert.Zero(t, second.Cost)
			assert.Equal(t, first.UnlockID, second.UnlockID)
			assert.Equal(t, int64(5), f.balance(t, reader.ID))
			assert.Equal(t, int64(4), f.balance(t, author.ID))
			assert.Equal(t, int64(1), f.unlockCount(t))
		})
	}
}

func TestUnlockService_ConcurrentUnlocksOfSameChapterChargeOnce(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy, func(t *testing.T) {
			f := newUnlockFixture(t, strategy)
			author := f.seedProfile(t, entity.RoleAuthor, 0)
			reader := f.seedProfile(t, entity.RoleReader, 100)
			novel := f.seedNovel(t, "iron-path", &author.ID)
			f.seedChapter(t, novel.ID, 7, durationPtr(time.Hour), 5)

			const workers = 8
			var wg sync.WaitGroup
			errs := make(chan error, workers)
			for range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
						NovelRef:      "iron-path",
						ChapterNumber: 7,
					})
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				require.NoError(t, err)
			}
			assert.Equal(t, int64(95), f.balance(t, reader.ID))
			assert.Equal(t, int64(4), f.balance(t, author.ID))
			assert.Equal(t, int64(1), f.unlockCount(t))
		})
	}
}

func TestUnlockService_ConcurrentUnlocksNeverOverdraw(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy, func(t *testing.T) {
			f := newUnlockFixture(t, strategy)
			reader := f.seedProfile(t, entity.RoleReader, 10)
			novel := f.seedNovel(t, "no-author", nil)
			for n := 1; n <= 4; n++ {
				f.seedChapter(t, novel.ID, n, durationPtr(time.Hour), 5)
			}

			var wg sync.WaitGroup
			results := make(chan error, 4)
			for n := 1; n <= 4; n++ {
				wg.Add(1)
				go func(chapterNumber int) {
					defer wg.Done()
					_, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
						NovelRef:      "no-author",
						ChapterNumber: chapterNumber,
					})
					results <- err
				}(n)
			}
			wg.Wait()
			close(results)

			succeeded := 0
			for err := range results {
				if err == nil {
					succeeded++

					continue
				}
				require.ErrorIs(t, err, domainerrors.ErrInsufficientCoins)
			}

			assert.Equal(t, 2, succeeded)
			assert.Equal(t, int64(0), f.balance(t, reader.ID))
			assert.Equal(t, int64(2), f.unlockCount(t))
		})
	}
}

func TestUnlockService_NovelWithoutBeneficiaryOnlyDebits(t *testing.T) {
	f := newUnlockFixture(t, constants.UnlockStrategyTransaction)
	reader := f.seedProfile(t, entity.RoleReader, 10)
	novel := f.seedNovel(t, "no-author", nil)
	f.seedChapter(t, novel.ID, 1, durationPtr(time.Hour), 0)

	out, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
		NovelRef:      "no-author",
		ChapterNumber: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(constants.DefaultChapterCost), out.Cost)
	assert.Equal(t, int64(5), f.balance(t, reader.ID))
	require.Len(t, f.events, 1)
	assert.Empty(t, f.events[0].BeneficiaryID)
}

func TestUnlockService_BeneficiaryNotAuthorLeavesBalancesUntouched(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy, func(t *testing.T) {
			f := newUnlockFixture(t, strategy)
			notAnAuthor := f.seedProfile(t, entity.RoleReader, 0)
			reader := f.seedProfile(t, entity.RoleReader, 10)
			novel := f.seedNovel(t, "iron-path", &notAnAuthor.ID)
			f.seedChapter(t, novel.ID, 7, durationPtr(time.Hour), 5)

			_, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
				NovelRef:      "iron-path",
				ChapterNumber: 7,
			})

			require.ErrorIs(t, err, domainerrors.ErrUnlockFailed)
			assert.Equal(t, int64(10), f.balance(t, reader.ID))
			assert.Equal(t, int64(0), f.balance(t, notAnAuthor.ID))
			assert.Zero(t, f.unlockCount(t))
		})
	}
}

func TestUnlockService_CreditFailureRefundsReader(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy, func(t *testing.T) {
			catalog := newCatalogFixture(t)
			author := catalog.seedProfile(t, entity.RoleAuthor, 0)
			reader := catalog.seedProfile(t, entity.RoleReader, 10)
			novel := catalog.seedNovel(t, "iron-path", &author.ID)
			catalog.seedChapter(t, novel.ID, 7, durationPtr(time.Hour), 5)

			txManager := &faultyTxManager{
				TransactionManager: catalog.txManager,
				wrap: func(repos repository.RepositoryFactory) repository.RepositoryFactory {
					return &faultyFactory{
						RepositoryFactory: repos,
						failCreditFor:     author.ID,
						creditErr:         errors.New("connection reset"),
					}
				},
			}
			f := newUnlockFixtureWith(t, catalog, strategy, txManager)

			_, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
				NovelRef:      "iron-path",
				ChapterNumber: 7,
			})

			require.ErrorIs(t, err, domainerrors.ErrUnlockFailed)
			assert.Equal(t, int64(10), f.balance(t, reader.ID))
			assert.Equal(t, int64(0), f.balance(t, author.ID))
			assert.Zero(t, f.unlockCount(t))
			assert.Empty(t, f.events)
		})
	}
}

func TestUnlockService_LosingReceiptRaceReportsAlreadyUnlocked(t *testing.T) {
	catalog := newCatalogFixture(t)
	author := catalog.seedProfile(t, entity.RoleAuthor, 0)
	reader := catalog.seedProfile(t, entity.RoleReader, 10)
	novel := catalog.seedNovel(t, "iron-path", &author.ID)
	catalog.seedChapter(t, novel.ID, 7, durationPtr(time.Hour), 5)

	rival := uuid.New()
	txManager := &faultyTxManager{
		TransactionManager: catalog.txManager,
		wrap: func(repos repository.RepositoryFactory) repository.RepositoryFactory {
			return &faultyFactory{
				RepositoryFactory: repos,
				// Another session records the receipt between our duplicate check and our insert.
				beforeRecord: func(ctx context.Context, unlocks repository.UnlockRepository, unlock *entity.ChapterUnlock) {
					concurrent := *unlock
					concurrent.ID = rival
					_ = unlocks.Create(ctx, &concurrent)
				},
			}
		},
	}
	f := newUnlockFixtureWith(t, catalog, constants.UnlockStrategySaga, txManager)

	out, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
		NovelRef:      "iron-path",
		ChapterNumber: 7,
	})

	require.NoError(t, err)
	assert.True(t, out.AlreadyUnlocked)
	assert.Equal(t, rival, out.UnlockID)
	assert.Zero(t, out.Cost)
	assert.Equal(t, int64(10), f.balance(t, reader.ID))
	assert.Equal(t, int64(0), f.balance(t, author.ID))
	assert.Equal(t, int64(1), f.unlockCount(t))
	assert.Empty(t, f.events)
}

func TestUnlockService_PublishedChapterIsFree(t *testing.T) {
	f := newUnlockFixture(t, constants.UnlockStrategyTransaction)
	reader := f.seedProfile(t, entity.RoleReader, 10)
	novel := f.seedNovel(t, "iron-path", nil)
	f.seedChapter(t, novel.ID, 1, durationPtr(-time.Hour), 5)

	out, err := f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
		NovelRef:      "iron-path",
		ChapterNumber: 1,
	})

	require.NoError(t, err)
	assert.True(t, out.Free)
	assert.Zero(t, out.Cost)
	assert.Equal(t, int64(10), f.balance(t, reader.ID))
	assert.Zero(t, f.unlockCount(t))
}

func TestUnlockService_AlreadyOwnedWithEmptyBalance(t *testing.T) {
	f := newUnlockFixture(t, constants.UnlockStrategyTransaction)
	reader := f.seedProfile(t, entity.RoleReader, 5)
	novel := f.seedNovel(t, "iron-path", nil)
	f.seedChapter(t, novel.ID, 1, durationPtr(time.Hour), 5)

	input := &usecase.UnlockChapterInput{NovelRef: "iron-path", ChapterNumber: 1}
	_, err := f.service.UnlockChapter(context.Background(), identityOf(reader), input)
	require.NoError(t, err)
	require.Equal(t, int64(0), f.balance(t, reader.ID))

	out, err := f.service.UnlockChapter(context.Background(), identityOf(reader), input)

	require.NoError(t, err)
	assert.True(t, out.AlreadyUnlocked)
	assert.Zero(t, out.Balance)
}

func TestUnlockService_Preconditions(t *testing.T) {
	f := newUnlockFixture(t, constants.UnlockStrategyTransaction)
	reader := f.seedProfile(t, entity.RoleReader, 10)
	novel := f.seedNovel(t, "iron-path", nil)
	f.seedChapter(t, novel.ID, 1, durationPtr(time.Hour), 5)
	stranger := &entity.Identity{UserID: uuid.New()}

	tests := []struct {
		name    string
		reader  *entity.Identity
		input   *usecase.UnlockChapterInput
		wantErr error
	}{
		{name: "anonymous reader", reader: nil, input: &usecase.UnlockChapterInput{NovelRef: "iron-path", ChapterNumber: 1}, wantErr: domainerrors.ErrSignInRequired},
		{name: "missing input", reader: identityOf(reader), input: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "non-positive chapter", reader: identityOf(reader), input: &usecase.UnlockChapterInput{NovelRef: "iron-path"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown novel", reader: identityOf(reader), input: &usecase.UnlockChapterInput{NovelRef: "missing", ChapterNumber: 1}, wantErr: domainerrors.ErrNovelNotFound},
		{name: "unknown chapter", reader: identityOf(reader), input: &usecase.UnlockChapterInput{NovelRef: "iron-path", ChapterNumber: 99}, wantErr: domainerrors.ErrChapterNotFound},
		{name: "no profile yet", reader: stranger, input: &usecase.UnlockChapterInput{NovelRef: "iron-path", ChapterNumber: 1}, wantErr: domainerrors.ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.service.UnlockChapter(context.Background(), tt.reader, tt.input)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}

	assert.Equal(t, int64(10), f.balance(t, reader.ID))
	assert.Zero(t, f.unlockCount(t))
}

func TestUnlockService_IdempotencyKeyReplaysFirstResponse(t *testing.T) {
	f := newUnlockFixture(t, constants.UnlockStrategyTransaction)
	reader := f.seedProfile(t, entity.RoleReader, 10)
	novel := f.seedNovel(t, "iron-path", nil)
	f.seedChapter(t, novel.ID, 1, durationPtr(time.Hour), 5)
	f.seedChapter(t, novel.ID, 2, durationPtr(time.Hour), 5)

	input := &usecase.UnlockChapterInput{NovelRef: "iron-path", ChapterNumber: 1, IdempotencyKey: "key-1"}
	first, err := f.service.UnlockChapter(context.Background(), identityOf(reader), input)
	require.NoError(t, err)

	replayed, err := f.service.UnlockChapter(context.Background(), identityOf(reader), input)
	require.NoError(t, err)

	assert.True(t, replayed.Replayed)
	assert.Equal(t, first.UnlockID, replayed.UnlockID)
	assert.Equal(t, first.Cost, replayed.Cost)
	assert.Equal(t, first.Balance, replayed.Balance)
	assert.Equal(t, int64(5), f.balance(t, reader.ID))

	_, err = f.service.UnlockChapter(context.Background(), identityOf(reader), &usecase.UnlockChapterInput{
		NovelRef:       "iron-path",
		ChapterNumber:  2,
		IdempotencyKey: "key-1",
	})
	require.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyReused)
	assert.Equal(t, int64(5), f.balance(t, reader.ID))
}

func TestNewUnlockService_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig("two-phase")

	_, err := NewUnlockService(UnlockServiceParams{Config: cfg, Logger: discardLogger()})

	require.Error(t, err)
}

func TestNewRevenueSharePolicy(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		ratio     string
		fee       int64
		wantErr   bool
		wantShare int64
	}{
		{name: "default ratio", mode: "ratio", wantShare: 4},
		{name: "custom ratio", mode: "ratio", ratio: "0.5", wantShare: 2},
		{name: "ratio above one", mode: "ratio", ratio: "1.5", wantErr: true},
		{name: "malformed ratio", mode: "ratio", ratio: "most", wantErr: true},
		{name: "fixed fee", mode: "fee", fee: 2, wantShare: 3},
		{name: "negative fee", mode: "fee", fee: -1, wantErr: true},
		{name: "disabled", mode: "none", wantShare: 0},
		{name: "empty mode disables", mode: "", wantShare: 0},
		{name: "unknown mode", mode: "split", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(constants.UnlockStrategyTransaction).Unlock.RevenueShare
			cfg.Mode = tt.mode
			cfg.Ratio = tt.ratio
			cfg.PlatformFee = tt.fee

			policy, err := NewRevenueSharePolicy(cfg)

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantShare, policy.Share(5))
		})
	}
}
