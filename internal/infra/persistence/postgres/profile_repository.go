// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	"novelhub/internal/domain/repository"
	"novelhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("coin balance cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// DebitCoins subtracts amount only when the current balance covers it. The guard
// lives in the WHERE clause so concurrent debits can never overdraw.
func (repo *profileRepository) DebitCoins(ctx context.Context, id uuid.UUID, amount int64) error {
	if amount < 0 {
		return errors.Errorf("debit amount must not be negative: %d", amount)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ? AND coins >= ?", id, amount).
		Update("coins", gorm.Expr("coins - ?", amount))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientCoins
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit coins")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientCoins
	}

	return nil
}

// CreditCoins adds amount to the balance.
func (repo *profileRepository) CreditCoins(ctx context.Context, id uuid.UUID, amount int64) error {
	if amount < 0 {
		return errors.Errorf("credit amount must not be negative: %d", amount)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("coins", gorm.Expr("coins + ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit coins")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:            data.ID,
		Username:      data.Username,
		AvatarURL:     data.AvatarURL,
		DiscordID:     data.DiscordID,
		Role:          entity.Role(data.Role),
		Coins:         data.Coins,
		CurrentStreak: data.CurrentStreak,
		LastVisit:     data.LastVisit,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:            data.ID,
		Username:      data.Username,
		AvatarURL:     data.AvatarURL,
		DiscordID:     data.DiscordID,
		Role:          data.Role.String(),
		Coins:         data.Coins,
		CurrentStreak: data.CurrentStreak,
		LastVisit:     data.LastVisit,
	}
}
