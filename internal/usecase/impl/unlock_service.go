package impl

import (
	"context"
	"log/slog"

	"novelhub/config"
	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/domain/constants"
	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/domain/repository"
	"novelhub/internal/domain/service"
	"novelhub/internal/domain/transfer"
	"novelhub/internal/errors"
	"novelhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// unlockService implements the UnlockUsecase interface.
type unlockService struct {
	txManager   repository.TransactionManager
	idempotency service.IdempotencyStore
	publisher   service.EventPublisher
	clock       service.Clock
	policy      entity.RevenueSharePolicy
	defaultCost int64
	strategy    string
	logger      *slog.Logger
}

// UnlockServiceParams holds dependencies for UnlockService, injected by Fx.
type UnlockServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Idempotency service.IdempotencyStore
	Publisher   service.EventPublisher
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewUnlockService is the constructor for unlockService.
func NewUnlockService(params UnlockServiceParams) (usecase.UnlockUsecase, error) {
	policy, err := NewRevenueSharePolicy(params.Config.Unlock.RevenueShare)
	if err != nil {
		return nil, err
	}

	strategy := params.Config.Unlock.Strategy
	switch strategy {
	case "":
		strategy = constants.UnlockStrategyTransaction
	case constants.UnlockStrategyTransaction, constants.UnlockStrategySaga:
	default:
		return nil, errors.Errorf("unknown unlock strategy: %s", strategy)
	}

	defaultCost := params.Config.Unlock.DefaultCost
	if defaultCost <= 0 {
		defaultCost = constants.DefaultChapterCost
	}

	return &unlockService{
		txManager:   params.TxManager,
		idempotency: params.Idempotency,
		publisher:   params.Publisher,
		clock:       params.Clock,
		policy:      policy,
		defaultCost: defaultCost,
		strategy:    strategy,
		logger:      params.Logger,
	}, nil
}

// NewRevenueSharePolicy validates the configured share policy.
func NewRevenueSharePolicy(cfg config.RevenueShareConfig) (entity.RevenueSharePolicy, error) {
	policy := entity.RevenueSharePolicy{Mode: entity.RevenueShareMode(cfg.Mode)}

	switch policy.Mode {
	case "", entity.RevenueShareNone:
		policy.Mode = entity.RevenueShareNone
	case entity.RevenueShareRatio:
		policy.Ratio = entity.DefaultRevenueShareRatio
		if cfg.Ratio != "" {
			ratio, err := decimal.NewFromString(cfg.Ratio)
			if err != nil {
				return policy, errors.Wrapf(err, "invalid revenue share ratio %q", cfg.Ratio)
			}
			if ratio.IsNegative() || ratio.GreaterThan(decimal.NewFromInt(1)) {
				return policy, errors.Errorf("revenue share ratio %s must be within [0, 1]", ratio)
			}
			policy.Ratio = ratio
		}
	case entity.RevenueShareFee:
		if cfg.PlatformFee < 0 {
			return policy, errors.Errorf("platform fee %d must not be negative", cfg.PlatformFee)
		}
		policy.PlatformFee = cfg.PlatformFee
	default:
		return policy, errors.Errorf("unknown revenue share mode: %s", cfg.Mode)
	}

	return policy, nil
}

func (srv *unlockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UnlockChapter validates preconditions, then runs the transfer with the configured strategy.
func (srv *unlockService) UnlockChapter(ctx context.Context, reader *entity.Identity, input *usecase.UnlockChapterInput) (*usecase.UnlockChapterOutput, error) {
	if reader.IsAnonymous() {
		return nil, domainerrors.ErrSignInRequired
	}
	if input == nil || input.NovelRef == "" || input.ChapterNumber <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("novel and a positive chapter number are required")
	}

	repos := srv.txManager.Repositories()

	novel, err := repos.NewNovelRepository().FindByRef(ctx, input.NovelRef)
	if err != nil {
		if errors.Is(err, repository.ErrNovelNotFound) {
			return nil, domainerrors.ErrNovelNotFound
		}

		return nil, srv.unlockFailed(ctx, "resolve novel", err)
	}

	cacheKey := idempotencyCacheKey(reader.UserID, input.IdempotencyKey)
	if cacheKey != "" {
		output, replayed, err := srv.replay(ctx, cacheKey, novel.ID, input.ChapterNumber)
		if err != nil || replayed {
			return output, err
		}
	}

	output, err := srv.unlock(ctx, repos, reader, novel, input.ChapterNumber)
	if err != nil {
		return nil, err
	}

	srv.remember(ctx, cacheKey, reader.UserID, output)

	return output, nil
}

func (srv *unlockService) unlock(
	ctx context.Context,
	repos repository.RepositoryFactory,
	reader *entity.Identity,
	novel *entity.Novel,
	chapterNumber int,
) (*usecase.UnlockChapterOutput, error) {
	chapter, err := repos.NewChapterRepository().FindByNumber(ctx, novel.ID, chapterNumber)
	if err != nil {
		if errors.Is(err, repository.ErrChapterNotFound) {
			return nil, domainerrors.ErrChapterNotFound
		}

		return nil, srv.unlockFailed(ctx, "resolve chapter", err)
	}

	profile, err := repos.NewProfileRepository().FindByID(ctx, reader.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, srv.unlockFailed(ctx, "load profile", err)
	}

	output := &usecase.UnlockChapterOutput{
		NovelID:       novel.ID,
		ChapterNumber: chapterNumber,
		Balance:       profile.Coins,
	}

	if chapter.IsPublished(srv.clock.Now()) {
		output.Free = true

		return output, nil
	}

	// A reader who already owns the chapter must not be rejected for a low balance.
	existing, err := repos.NewUnlockRepository().Find(ctx, reader.UserID, novel.ID, chapterNumber)
	switch {
	case err == nil:
		output.UnlockID = existing.ID
		output.AlreadyUnlocked = true

		return output, nil
	case !errors.Is(err, repository.ErrUnlockNotFound):
		return nil, srv.unlockFailed(ctx, "check existing unlock", err)
	}

	cost := unlockCost(chapter, srv.defaultCost)
	if !profile.CanAfford(cost) {
		return nil, domainerrors.ErrInsufficientCoins
	}

	plan := transfer.Plan{
		ReaderID:      reader.UserID,
		NovelID:       novel.ID,
		ChapterNumber: chapterNumber,
		Cost:          cost,
	}
	if srv.policy.Enabled() && novel.HasBeneficiary() {
		plan.BeneficiaryID = novel.AuthorProfileID
		plan.Share = srv.policy.Share(cost)
	}

	outcome, err := srv.runTransfer(ctx, plan)
	if err != nil {
		return srv.recoverTransferError(ctx, repos, plan, err)
	}

	output.UnlockID = outcome.Unlock.ID
	output.AlreadyUnlocked = outcome.AlreadyUnlocked
	if !outcome.AlreadyUnlocked {
		output.Cost = cost
		srv.publish(ctx, plan, outcome)
	}
	output.Balance = srv.balanceAfter(ctx, repos, reader.UserID, profile.Coins-output.Cost)

	srv.log(ctx).Info("Chapter unlocked",
		slog.Any("readerID", reader.UserID),
		slog.Any("novelID", novel.ID),
		slog.Int("chapterNumber", chapterNumber),
		slog.Int64("cost", output.Cost),
		slog.Int64("credited", outcome.Credited),
		slog.Bool("alreadyUnlocked", outcome.AlreadyUnlocked),
	)

	return output, nil
}

// runTransfer executes the plan in one database transaction, or step by step with
// compensation when the saga strategy is configured.
func (srv *unlockService) runTransfer(ctx context.Context, plan transfer.Plan) (*transfer.Outcome, error) {
	opts := []transfer.Option{
		transfer.WithLogger(srv.log(ctx)),
		transfer.WithClock(srv.clock.Now),
	}

	if srv.strategy == constants.UnlockStrategySaga {
		machine := transfer.New(append(opts, transfer.WithCompensation())...)

		return machine.Run(ctx, srv.txManager.Repositories(), plan)
	}

	machine := transfer.New(opts...)

	var outcome *transfer.Outcome
	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		var err error
		outcome, err = machine.Run(ctx, txRepos, plan)

		return err
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// recoverTransferError maps a failed transfer to the user-facing result. Losing the
// receipt race to a concurrent request is a success without charge.
func (srv *unlockService) recoverTransferError(
	ctx context.Context,
	repos repository.RepositoryFactory,
	plan transfer.Plan,
	err error,
) (*usecase.UnlockChapterOutput, error) {
	var transferErr *transfer.Error
	compensated := !errors.As(err, &transferErr) || transferErr.CompensationErr == nil

	switch {
	case compensated && errors.Is(err, repository.ErrUnlockAlreadyExists):
		existing, findErr := repos.NewUnlockRepository().Find(ctx, plan.ReaderID, plan.NovelID, plan.ChapterNumber)
		if findErr != nil {
			return nil, srv.unlockFailed(ctx, "load concurrent unlock", errors.Join(err, findErr))
		}

		return &usecase.UnlockChapterOutput{
			UnlockID:        existing.ID,
			NovelID:         plan.NovelID,
			ChapterNumber:   plan.ChapterNumber,
			Balance:         srv.balanceAfter(ctx, repos, plan.ReaderID, 0),
			AlreadyUnlocked: true,
		}, nil
	case compensated && errors.Is(err, repository.ErrInsufficientCoins):
		return nil, domainerrors.ErrInsufficientCoins
	}

	return nil, srv.unlockFailed(ctx, "transfer", err)
}

// unlockFailed logs the low-level cause and returns the generic user-facing error.
func (srv *unlockService) unlockFailed(ctx context.Context, step string, err error) error {
	srv.log(ctx).Error("Chapter unlock failed", slog.String("step", step), slog.Any("error", err))

	return domainerrors.ErrUnlockFailed.WithDetails(step)
}

// balanceAfter re-reads the balance after the transfer committed; fallback is
// returned when the read fails.
func (srv *unlockService) balanceAfter(ctx context.Context, repos repository.RepositoryFactory, profileID uuid.UUID, fallback int64) int64 {
	profile, err := repos.NewProfileRepository().FindByID(ctx, profileID)
	if err != nil {
		srv.log(ctx).Warn("Failed to read balance after unlock", slog.Any("profileID", profileID), slog.Any("error", err))

		return fallback
	}

	return profile.Coins
}

func (srv *unlockService) publish(ctx context.Context, plan transfer.Plan, outcome *transfer.Outcome) {
	event := &service.ChapterUnlockedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		UnlockID:      outcome.Unlock.ID.String(),
		ProfileID:     plan.ReaderID.String(),
		NovelID:       plan.NovelID.String(),
		ChapterNumber: plan.ChapterNumber,
		Cost:          plan.Cost,
		Share:         outcome.Credited,
		UnlockedAt:    outcome.Unlock.CreatedAt,
	}
	if outcome.Credited > 0 && plan.BeneficiaryID != nil {
		event.BeneficiaryID = plan.BeneficiaryID.String()
	}

	if err := srv.publisher.PublishChapterUnlocked(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish chapter unlocked event",
			slog.String("unlockID", event.UnlockID),
			slog.Any("error", err),
		)
	}
}

// replay serves a stored response for a repeated idempotency key. A key reused for
// another chapter is rejected.
func (srv *unlockService) replay(ctx context.Context, key string, novelID uuid.UUID, chapterNumber int) (*usecase.UnlockChapterOutput, bool, error) {
	record, err := srv.idempotency.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrIdempotencyRecordNotFound) {
			srv.log(ctx).Warn("Failed to load idempotency record", slog.Any("error", err))
		}

		return nil, false, nil
	}

	if record.NovelID != novelID.String() || record.ChapterNumber != chapterNumber {
		return nil, true, domainerrors.ErrIdempotencyKeyReused
	}

	output := &usecase.UnlockChapterOutput{
		NovelID:         novelID,
		ChapterNumber:   chapterNumber,
		Cost:            record.Cost,
		Balance:         record.Balance,
		AlreadyUnlocked: record.AlreadyOwned,
		Free:            record.Free,
		Replayed:        true,
	}
	if record.UnlockID != "" {
		if unlockID, err := uuid.Parse(record.UnlockID); err == nil {
			output.UnlockID = unlockID
		}
	}

	return output, true, nil
}

func (srv *unlockService) remember(ctx context.Context, key string, profileID uuid.UUID, output *usecase.UnlockChapterOutput) {
	if key == "" {
		return
	}

	record := &service.IdempotencyRecord{
		Key:           key,
		ProfileID:     profileID.String(),
		NovelID:       output.NovelID.String(),
		ChapterNumber: output.ChapterNumber,
		Cost:          output.Cost,
		Balance:       output.Balance,
		AlreadyOwned:  output.AlreadyUnlocked,
		Free:          output.Free,
		CreatedAt:     srv.clock.Now(),
	}
	if output.UnlockID != uuid.Nil {
		record.UnlockID = output.UnlockID.String()
	}

	if err := srv.idempotency.Save(ctx, record); err != nil {
		srv.log(ctx).Warn("Failed to save idempotency record", slog.Any("error", err))
	}
}

// idempotencyCacheKey scopes client keys to the reader.
func idempotencyCacheKey(profileID uuid.UUID, key string) string {
	if key == "" {
		return ""
	}

	return profileID.String() + ":" + key
}
