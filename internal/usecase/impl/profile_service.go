package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/domain/repository"
	"novelhub/internal/domain/service"
	"novelhub/internal/usecase"
	"novelhub/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	fallbackUsernamePrefix = "User"
	fallbackUsernameLength = 5
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureProfile finds the reader's profile or provisions it on first sign-in.
func (srv *profileService) EnsureProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrSignInRequired
	}

	profiles := srv.txManager.Repositories().NewProfileRepository()

	profile, err := profiles.FindByID(ctx, identity.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Error("Failed to look up profile", slog.Any("userID", identity.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to look up profile")
	}

	profile, err = srv.newProfile(identity)
	if err != nil {
		return nil, domainerrors.ErrProfileCreationFailed.WrapMessage(err.Error())
	}

	if err := profiles.Create(ctx, profile); err != nil {
		// A concurrent first request may have provisioned the same profile.
		if errors.Is(err, repository.ErrProfileAlreadyExists) {
			return srv.GetProfile(ctx, identity.UserID)
		}

		srv.log(ctx).Error("Failed to create profile", slog.Any("userID", identity.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrProfileCreationFailed
	}

	srv.log(ctx).Info("Profile provisioned",
		slog.Any("userID", profile.ID),
		slog.String("username", profile.Username),
	)

	return profile, nil
}

// GetProfile retrieves a profile by id.
func (srv *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.txManager.Repositories().NewProfileRepository().FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

func (srv *profileService) newProfile(identity *entity.Identity) (*entity.Profile, error) {
	username, err := usernameFor(identity.Metadata)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()

	return &entity.Profile{
		ID:        identity.UserID,
		Username:  username,
		AvatarURL: identity.Metadata.AvatarURL,
		DiscordID: identity.Metadata.ProviderID,
		Role:      entity.RoleReader,
		Coins:     0,
		LastVisit: now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// usernameFor picks the first non-empty provider name, falling back to a random handle.
func usernameFor(meta entity.IdentityMetadata) (string, error) {
	for _, candidate := range []string{meta.PreferredUsername, meta.FullName, meta.Name} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name, nil
		}
	}

	suffix, err := util.RandomSuffix(fallbackUsernameLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate username")
	}

	return fallbackUsernamePrefix + suffix, nil
}
