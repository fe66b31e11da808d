// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"novelhub/internal/domain/entity"
	"novelhub/internal/util"

	"github.com/google/uuid"
)

// EntitlementUsecase decides which chapters a reader may read.
// A nil reader is anonymous; read paths degrade to neutral results instead of failing.
type EntitlementUsecase interface {
	// IsAccessible reports whether the reader may read one chapter. Unresolvable
	// novels or chapters and lookup failures yield false.
	IsAccessible(ctx context.Context, reader *entity.Identity, novelRef string, chapterNumber int) bool

	// ListAccessible returns the readable chapters ascending by chapter number.
	ListAccessible(ctx context.Context, reader *entity.Identity, novelRef string) []*entity.Chapter

	// ListChapters returns every chapter of a novel with its lock state.
	ListChapters(ctx context.Context, reader *entity.Identity, novelRef string) (*ChapterListing, error)

	// GetChapter resolves a chapter by novel reference and chapter slug ("c12-title").
	// Content is withheld while the chapter is locked for the reader.
	GetChapter(ctx context.Context, reader *entity.Identity, novelRef, chapterSlug string) (*ChapterView, error)
}

// --- Output DTOs ---

// NovelSummary is the public view of a novel.
type NovelSummary struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
}

// NewNovelSummary maps a novel entity to its public view.
func NewNovelSummary(novel *entity.Novel) NovelSummary {
	return NovelSummary{
		ID:            novel.ID,
		Slug:          novel.Slug,
		Title:         novel.Title,
		Author:        novel.Author,
		Description:   novel.Description,
		CoverImageURL: novel.CoverImageURL,
	}
}

// ChapterItem is one row of a chapter listing.
type ChapterItem struct {
	ChapterNumber int        `json:"chapter_number"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	PublishAt     *time.Time `json:"publish_at,omitempty"`
	PublishDate   string     `json:"publish_date,omitempty"`
	Cost          int64      `json:"cost"`
	Locked        bool       `json:"locked"`
	Unlocked      bool       `json:"unlocked"`
}

// NewChapterItem builds a listing row. cost is the effective unlock price.
func NewChapterItem(chapter *entity.Chapter, cost int64, locked, unlocked bool) ChapterItem {
	item := ChapterItem{
		ChapterNumber: chapter.ChapterNumber,
		Title:         chapter.Title,
		Slug:          util.ChapterSlug(chapter.ChapterNumber, chapter.Title),
		PublishAt:     chapter.PublishAt,
		Cost:          cost,
		Locked:        locked,
		Unlocked:      unlocked,
	}
	if chapter.PublishAt != nil {
		item.PublishDate = util.FormatDate(*chapter.PublishAt)
	}

	return item
}

// ChapterListing lists every chapter of a novel for one reader.
type ChapterListing struct {
	Novel           NovelSummary  `json:"novel"`
	Chapters        []ChapterItem `json:"chapters"`
	TotalAccessible int           `json:"total_accessible"`
}

// ChapterLink points at a neighbouring chapter.
type ChapterLink struct {
	ChapterNumber int    `json:"chapter_number"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
}

// ChapterNavigation holds the nearest accessible chapters around the current one.
// Either side is nil at a boundary.
type ChapterNavigation struct {
	Prev *ChapterLink `json:"prev"`
	Next *ChapterLink `json:"next"`
}

// ChapterView is a single chapter page.
type ChapterView struct {
	Novel           NovelSummary      `json:"novel"`
	Chapter         ChapterItem       `json:"chapter"`
	Content         string            `json:"content,omitempty"`
	Navigation      ChapterNavigation `json:"navigation"`
	TotalAccessible int               `json:"total_accessible"`
}
