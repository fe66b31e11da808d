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

// chapterRepository implements the repository.ChapterRepository interface.
type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository is the constructor for chapterRepository.
func NewChapterRepository(db *gorm.DB) repository.ChapterRepository {
	return &chapterRepository{
		db: db,
	}
}

// FindByNumber retrieves one chapter of a novel.
func (repo *chapterRepository) FindByNumber(ctx context.Context, novelID uuid.UUID, number int) (*entity.Chapter, error) {
	var chapterM model.ChapterModel

	if err := repo.db.WithContext(ctx).
		Where("novel_id = ? AND chapter_number = ?", novelID, number).
		First(&chapterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChapterNotFound
		}

		return nil, errors.Wrap(err, "failed to find chapter by number")
	}

	return toChapterDomain(&chapterM), nil
}

// ListByNovel returns the chapters of a novel ordered by chapter number. Content
// is not loaded; listings never display it.
func (repo *chapterRepository) ListByNovel(ctx context.Context, novelID uuid.UUID) ([]*entity.Chapter, error) {
	var chapterModels []*model.ChapterModel

	if err := repo.db.WithContext(ctx).
		Omit("content").
		Where("novel_id = ?", novelID).
		Order("chapter_number ASC").
		Find(&chapterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chapters")
	}

	chapters := make([]*entity.Chapter, 0, len(chapterModels))
	for _, chapterM := range chapterModels {
		chapters = append(chapters, toChapterDomain(chapterM))
	}

	return chapters, nil
}

// Create persists a new chapter.
func (repo *chapterRepository) Create(ctx context.Context, chapter *entity.Chapter) error {
	chapterM := fromChapterDomain(chapter)

	if err := repo.db.WithContext(ctx).Create(chapterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrChapterAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid novel reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chapter")
	}

	chapter.CreatedAt = chapterM.CreatedAt
	chapter.UpdatedAt = chapterM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toChapterDomain(data *model.ChapterModel) *entity.Chapter {
	if data == nil {
		return nil
	}

	return &entity.Chapter{
		ID:            data.ID,
		NovelID:       data.NovelID,
		ChapterNumber: data.ChapterNumber,
		Title:         data.Title,
		Content:       data.Content,
		PublishAt:     data.PublishAt,
		Coins:         data.Coins,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromChapterDomain(data *entity.Chapter) *model.ChapterModel {
	if data == nil {
		return nil
	}

	return &model.ChapterModel{
		ID:            data.ID,
		NovelID:       data.NovelID,
		ChapterNumber: data.ChapterNumber,
		Title:         data.Title,
		Content:       data.Content,
		PublishAt:     data.PublishAt,
		Coins:         data.Coins,
	}
}
