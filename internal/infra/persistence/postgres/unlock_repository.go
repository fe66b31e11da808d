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

// unlockRepository implements the repository.UnlockRepository interface.
type unlockRepository struct {
	db *gorm.DB
}

// NewUnlockRepository is the constructor for unlockRepository.
func NewUnlockRepository(db *gorm.DB) repository.UnlockRepository {
	return &unlockRepository{
		db: db,
	}
}

// Find returns the receipt for a reader and chapter.
func (repo *unlockRepository) Find(ctx context.Context, profileID, novelID uuid.UUID, chapterNumber int) (*entity.ChapterUnlock, error) {
	var unlockM model.ChapterUnlockModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND novel_id = ? AND chapter_number = ?", profileID, novelID, chapterNumber).
		First(&unlockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnlockNotFound
		}

		return nil, errors.Wrap(err, "failed to find chapter unlock")
	}

	return toUnlockDomain(&unlockM), nil
}

// ListChapterNumbers returns the unlocked chapter numbers of a novel for one reader.
func (repo *unlockRepository) ListChapterNumbers(ctx context.Context, profileID, novelID uuid.UUID) (map[int]struct{}, error) {
	var numbers []int

	if err := repo.db.WithContext(ctx).
		Model(&model.ChapterUnlockModel{}).
		Where("profile_id = ? AND novel_id = ?", profileID, novelID).
		Pluck("chapter_number", &numbers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unlocked chapters")
	}

	set := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		set[n] = struct{}{}
	}

	return set, nil
}

// Create inserts a new receipt.
func (repo *unlockRepository) Create(ctx context.Context, unlock *entity.ChapterUnlock) error {
	unlockM := fromUnlockDomain(unlock)

	if err := repo.db.WithContext(ctx).Create(unlockM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUnlockAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnlockFailed.WrapMessage("invalid profile or novel reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chapter unlock")
	}

	unlock.CreatedAt = unlockM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toUnlockDomain(data *model.ChapterUnlockModel) *entity.ChapterUnlock {
	if data == nil {
		return nil
	}

	return &entity.ChapterUnlock{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		NovelID:       data.NovelID,
		ChapterNumber: data.ChapterNumber,
		Cost:          data.Cost,
		CreatedAt:     data.CreatedAt,
	}
}

func fromUnlockDomain(data *entity.ChapterUnlock) *model.ChapterUnlockModel {
	if data == nil {
		return nil
	}

	return &model.ChapterUnlockModel{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		NovelID:       data.NovelID,
		ChapterNumber: data.ChapterNumber,
		Cost:          data.Cost,
		CreatedAt:     data.CreatedAt,
	}
}
