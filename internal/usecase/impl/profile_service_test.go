package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/domain/repository"
	mockRepo "novelhub/internal/mocks/repository"
	mockService "novelhub/internal/mocks/service"
	"novelhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	profiles  *mockRepo.MockProfileRepository
	clock     *mockService.MockClock
	now       time.Time
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	profiles := mockRepo.NewMockProfileRepository(t)
	clock := mockService.NewMockClock(t)

	txManager.EXPECT().Repositories().Return(factory)
	factory.EXPECT().NewProfileRepository().Return(profiles)

	return profileServiceFixtures{
		service:   NewProfileService(txManager, clock, discardLogger()),
		txManager: txManager,
		profiles:  profiles,
		clock:     clock,
		now:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestProfileService_EnsureProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	existing := &entity.Profile{ID: uuid.New(), Username: "reader", Role: entity.RoleReader, Coins: 12}
	fx.profiles.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	profile, err := fx.service.EnsureProfile(ctx, &entity.Identity{UserID: existing.ID})

	require.NoError(t, err)
	assert.Equal(t, existing, profile)
}

func TestProfileService_EnsureProfile_ProvisionsNewReader(t *testing.T) {
	tests := []struct {
		name         string
		metadata     entity.IdentityMetadata
		wantUsername string
	}{
		{
			name:         "preferred username wins",
			metadata:     entity.IdentityMetadata{PreferredUsername: "ironreader", FullName: "Iron Reader", Name: "iron"},
			wantUsername: "ironreader",
		},
		{
			name:         "falls back to full name",
			metadata:     entity.IdentityMetadata{FullName: "Iron Reader", Name: "iron"},
			wantUsername: "Iron Reader",
		},
		{
			name:         "falls back to name",
			metadata:     entity.IdentityMetadata{Name: "iron"},
			wantUsername: "iron",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			ctx := context.Background()
			userID := uuid.New()
			tt.metadata.AvatarURL = "https://cdn.example.com/a.png"
			tt.metadata.ProviderID = "discord-42"

			fx.profiles.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
			fx.clock.EXPECT().Now().Return(fx.now)
			fx.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

			profile, err := fx.service.EnsureProfile(ctx, &entity.Identity{UserID: userID, Metadata: tt.metadata})

			require.NoError(t, err)
			assert.Equal(t, userID, profile.ID)
			assert.Equal(t, tt.wantUsername, profile.Username)
			assert.Equal(t, entity.RoleReader, profile.Role)
			assert.Zero(t, profile.Coins)
			assert.Equal(t, "discord-42", profile.DiscordID)
			assert.Equal(t, "https://cdn.example.com/a.png", profile.AvatarURL)
			assert.Equal(t, fx.now, profile.LastVisit)
		})
	}
}

func TestProfileService_EnsureProfile_RandomUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.profiles.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.clock.EXPECT().Now().Return(fx.now)
	fx.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	profile, err := fx.service.EnsureProfile(ctx, &entity.Identity{UserID: userID})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(profile.Username, "User"))
	assert.Len(t, profile.Username, len("User")+5)
}

func TestProfileService_EnsureProfile_ConcurrentProvisioning(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	winner := &entity.Profile{ID: userID, Username: "first", Role: entity.RoleReader}

	fx.profiles.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.clock.EXPECT().Now().Return(fx.now)
	fx.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(repository.ErrProfileAlreadyExists)
	fx.profiles.EXPECT().FindByID(ctx, userID).Return(winner, nil).Once()

	profile, err := fx.service.EnsureProfile(ctx, &entity.Identity{UserID: userID, Metadata: entity.IdentityMetadata{Name: "second"}})

	require.NoError(t, err)
	assert.Equal(t, "first", profile.Username)
}

func TestProfileService_EnsureProfile_Errors(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		svc := NewProfileService(mockRepo.NewMockTransactionManager(t), mockService.NewMockClock(t), discardLogger())

		_, err := svc.EnsureProfile(context.Background(), nil)

		require.ErrorIs(t, err, domainerrors.ErrSignInRequired)
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestProfileService(t)
		userID := uuid.New()
		fx.profiles.EXPECT().FindByID(context.Background(), userID).Return(nil, errors.New("timeout"))

		_, err := fx.service.EnsureProfile(context.Background(), &entity.Identity{UserID: userID})

		require.ErrorIs(t, err, domainerrors.ErrInternalError)
	})

	t.Run("create failure", func(t *testing.T) {
		fx := createTestProfileService(t)
		userID := uuid.New()
		fx.profiles.EXPECT().FindByID(context.Background(), userID).Return(nil, repository.ErrProfileNotFound)
		fx.clock.EXPECT().Now().Return(fx.now)
		fx.profiles.EXPECT().Create(context.Background(), mock.AnythingOfType("*entity.Profile")).Return(errors.New("disk full"))

		_, err := fx.service.EnsureProfile(context.Background(), &entity.Identity{UserID: userID, Metadata: entity.IdentityMetadata{Name: "x"}})

		require.ErrorIs(t, err, domainerrors.ErrProfileCreationFailed)
	})
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	fx.profiles.EXPECT().FindByID(context.Background(), userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(context.Background(), userID)

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
