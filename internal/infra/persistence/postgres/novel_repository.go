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

// novelRepository implements the repository.NovelRepository interface.
type novelRepository struct {
	db *gorm.DB
}

// NewNovelRepository is the constructor for novelRepository.
func NewNovelRepository(db *gorm.DB) repository.NovelRepository {
	return &novelRepository{
		db: db,
	}
}

// FindByRef resolves a novel by id or slug in one query. A ref that is not a
// UUID can only match a slug.
func (repo *novelRepository) FindByRef(ctx context.Context, ref string) (*entity.Novel, error) {
	if ref == "" {
		return nil, repository.ErrNovelNotFound
	}

	query := repo.db.WithContext(ctx)
	if id, err := uuid.Parse(ref); err == nil {
		query = query.Where("id = ? OR slug = ?", id, ref)
	} else {
		query = query.Where("slug = ?", ref)
	}

	var novelM model.NovelModel
	if err := query.First(&novelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNovelNotFound
		}

		return nil, errors.Wrap(err, "failed to find novel by reference")
	}

	return toNovelDomain(&novelM), nil
}

// List returns all novels ordered by title.
func (repo *novelRepository) List(ctx context.Context) ([]*entity.Novel, error) {
	var novelModels []*model.NovelModel

	if err := repo.db.WithContext(ctx).
		Order("title ASC").
		Find(&novelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list novels")
	}

	novels := make([]*entity.Novel, 0, len(novelModels))
	for _, novelM := range novelModels {
		novels = append(novels, toNovelDomain(novelM))
	}

	return novels, nil
}

// Create persists a new novel.
func (repo *novelRepository) Create(ctx context.Context, novel *entity.Novel) error {
	novelM := fromNovelDomain(novel)

	if err := repo.db.WithContext(ctx).Omit("AuthorProfile", "Chapters").Create(novelM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrNovelAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid author profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create novel")
	}

	novel.CreatedAt = novelM.CreatedAt
	novel.UpdatedAt = novelM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toNovelDomain(data *model.NovelModel) *entity.Novel {
	if data == nil {
		return nil
	}

	return &entity.Novel{
		ID:              data.ID,
		Slug:            data.Slug,
		Title:           data.Title,
		Author:          data.Author,
		Description:     data.Description,
		CoverImageURL:   data.CoverImageURL,
		AuthorProfileID: data.AuthorProfileID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromNovelDomain(data *entity.Novel) *model.NovelModel {
	if data == nil {
		return nil
	}

	return &model.NovelModel{
		ID:              data.ID,
		Slug:            data.Slug,
		Title:           data.Title,
		Author:          data.Author,
		Description:     data.Description,
		CoverImageURL:   data.CoverImageURL,
		AuthorProfileID: data.AuthorProfileID,
	}
}
