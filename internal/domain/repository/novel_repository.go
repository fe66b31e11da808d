package repository

import (
	"context"
	"errors"

	"novelhub/internal/domain/entity"
)

var (
	// ErrNovelNotFound is returned when a novel reference resolves to nothing.
	ErrNovelNotFound = errors.New("novel not found")

	// ErrNovelAlreadyExists is returned when the slug is already taken.
	ErrNovelAlreadyExists = errors.New("novel already exists")
)

// NovelRepository defines operations over the novel catalogue.
type NovelRepository interface {
	// FindByRef resolves a novel by primary key or slug in a single lookup.
	FindByRef(ctx context.Context, ref string) (*entity.Novel, error)

	// List returns novels ordered by title.
	List(ctx context.Context) ([]*entity.Novel, error)

	// Create persists a new novel.
	Create(ctx context.Context, novel *entity.Novel) error
}
