package persistence

import (
	"context"
	"fmt"
	"time"

	"novelhub/internal/domain/entity"
	"novelhub/internal/domain/repository"
	"novelhub/internal/errors"
	"novelhub/internal/util"

	"github.com/google/uuid"
)

const (
	demoNovelTitle     = "The Lantern Road"
	demoChapterCount   = 8
	demoScheduledCount = 3
	demoReaderCoins    = 100
)

// SeedDemo creates a demo author, a novel with a few scheduled chapters and,
// when readerID is set, a reader holding some coins. It does nothing if the demo
// novel already exists.
func SeedDemo(ctx context.Context, txManager repository.TransactionManager, now time.Time, readerID uuid.UUID) error {
	slug := util.NovelSlug(demoNovelTitle)

	return txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		novels := repos.NewNovelRepository()
		if _, err := novels.FindByRef(ctx, slug); err == nil {
			return nil
		} else if !errors.Is(err, repository.ErrNovelNotFound) {
			return errors.Wrap(err, "failed to look up demo novel")
		}

		profiles := repos.NewProfileRepository()
		author := &entity.Profile{
			ID:        uuid.New(),
			Username:  "lantern-author",
			Role:      entity.RoleAuthor,
			LastVisit: now,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := profiles.Create(ctx, author); err != nil {
			return errors.Wrap(err, "failed to create demo author")
		}

		if readerID != uuid.Nil {
			if err := seedReader(ctx, profiles, readerID, now); err != nil {
				return err
			}
		}

		novel := &entity.Novel{
			ID:              uuid.New(),
			Slug:            slug,
			Title:           demoNovelTitle,
			Author:          "A. Lantern",
			Description:     "A courier walks the road between two cities that do not trust each other.",
			AuthorProfileID: &author.ID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := novels.Create(ctx, novel); err != nil {
			return errors.Wrap(err, "failed to create demo novel")
		}

		chapters := repos.NewChapterRepository()
		firstScheduled := demoChapterCount - demoScheduledCount + 1
		for number := 1; number <= demoChapterCount; number++ {
			chapter := &entity.Chapter{
				ID:            uuid.New(),
				NovelID:       novel.ID,
				ChapterNumber: number,
				Title:         fmt.Sprintf("Mile %d", number),
				Content:       fmt.Sprintf("The road continues past mile marker %d.", number),
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if number >= firstScheduled {
				publishAt := now.Add(time.Duration(number-firstScheduled+1) * 7 * 24 * time.Hour)
				chapter.PublishAt = &publishAt
			}
			if err := chapters.Create(ctx, chapter); err != nil {
				return errors.Wrapf(err, "failed to create demo chapter %d", number)
			}
		}

		return nil
	})
}

// seedReader creates the demo reader unless a profile with that id exists.
func seedReader(ctx context.Context, profiles repository.ProfileRepository, readerID uuid.UUID, now time.Time) error {
	_, err := profiles.FindByID(ctx, readerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(err, "failed to look up demo reader")
	}

	reader := &entity.Profile{
		ID:        readerID,
		Username:  "demo-reader",
		Role:      entity.RoleReader,
		Coins:     demoReaderCoins,
		LastVisit: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return errors.Wrap(profiles.Create(ctx, reader), "failed to create demo reader")
}
