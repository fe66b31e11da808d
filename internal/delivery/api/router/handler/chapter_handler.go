package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/delivery/api/response"
	"novelhub/internal/domain/constants"
	"novelhub/internal/usecase"
	"novelhub/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChapterHandlerParams holds dependencies for ChapterHandler, injected by Fx.
type ChapterHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	NavigationUC  usecase.NavigationUsecase
	UnlockUC      usecase.UnlockUsecase
	ProfileUC     usecase.ProfileUsecase
	Logger        *slog.Logger
}

// ChapterHandler serves chapter listings, chapter pages and unlocks.
type ChapterHandler struct {
	entitlementUC usecase.EntitlementUsecase
	navigationUC  usecase.NavigationUsecase
	unlockUC      usecase.UnlockUsecase
	profileUC     usecase.ProfileUsecase
	logger        *slog.Logger
}

// NewChapterHandler is the constructor for ChapterHandler
func NewChapterHandler(params ChapterHandlerParams) *ChapterHandler {
	return &ChapterHandler{
		entitlementUC: params.EntitlementUC,
		navigationUC:  params.NavigationUC,
		unlockUC:      params.UnlockUC,
		profileUC:     params.ProfileUC,
		logger:        params.Logger,
	}
}

// chapterRequest binds the chapter path parameters
type chapterRequest struct {
	Novel   string `param:"novel" validate:"required"`
	Chapter string `param:"chapter" validate:"required"`
}

// AccessibleChaptersResponse lists the chapters a reader may read
type AccessibleChaptersResponse struct {
	Chapters []usecase.ChapterLink `json:"chapters"`
	Total    int                   `json:"total"`
}

// NavigationResponse is the pagination block of a chapter page
type NavigationResponse struct {
	usecase.ChapterNavigation
	Total int `json:"total"`
}

// ListChapters handles listing every chapter of a novel with its lock state
func (h *ChapterHandler) ListChapters(c echo.Context) error {
	listing, err := h.entitlementUC.ListChapters(c.Request().Context(), deliverycontext.GetIdentity(c), c.Param("novel"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// ListAccessible handles listing only the chapters the reader may read
func (h *ChapterHandler) ListAccessible(c echo.Context) error {
	chapters := h.entitlementUC.ListAccessible(c.Request().Context(), deliverycontext.GetIdentity(c), c.Param("novel"))

	links := make([]usecase.ChapterLink, 0, len(chapters))
	for _, chapter := range chapters {
		links = append(links, usecase.ChapterLink{
			ChapterNumber: chapter.ChapterNumber,
			Title:         chapter.Title,
			Slug:          util.ChapterSlug(chapter.ChapterNumber, chapter.Title),
		})
	}

	return response.Success(c, http.StatusOK, AccessibleChaptersResponse{Chapters: links, Total: len(links)})
}

// GetChapter handles a chapter page
func (h *ChapterHandler) GetChapter(c echo.Context) error {
	var req chapterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chapter path")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.entitlementUC.GetChapter(c.Request().Context(), deliverycontext.GetIdentity(c), req.Novel, req.Chapter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetNavigation handles the previous/next links around a chapter
func (h *ChapterHandler) GetNavigation(c echo.Context) error {
	var req chapterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chapter path")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	current, err := util.ParseChapterSlug(req.Chapter)
	if err != nil {
		return response.BindingError(c, "INVALID_CHAPTER", "Invalid chapter number or slug")
	}

	ctx := c.Request().Context()
	reader := deliverycontext.GetIdentity(c)

	return response.Success(c, http.StatusOK, NavigationResponse{
		ChapterNavigation: h.navigationUC.GetChapterNavigation(ctx, reader, req.Novel, current),
		Total:             h.navigationUC.GetTotalChapters(ctx, reader, req.Novel),
	})
}

// UnlockChapter handles spending coins on a scheduled chapter
func (h *ChapterHandler) UnlockChapter(c echo.Context) error {
	var req chapterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chapter path")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	chapterNumber, err := util.ParseChapterSlug(req.Chapter)
	if err != nil {
		return response.BindingError(c, "INVALID_CHAPTER", "Invalid chapter number or slug")
	}

	ctx := c.Request().Context()
	reader := deliverycontext.GetIdentity(c)

	// First-time readers get their profile on their first unlock attempt.
	if _, err := h.profileUC.EnsureProfile(ctx, reader); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.unlockUC.UnlockChapter(ctx, reader, &usecase.UnlockChapterInput{
		NovelRef:       req.Novel,
		ChapterNumber:  chapterNumber,
		IdempotencyKey: c.Request().Header.Get(constants.HeaderIdempotencyKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if output.AlreadyUnlocked || output.Free || output.Replayed {
		status = http.StatusOK
	}

	return response.Success(c, status, output)
}
