package handler

import (
	"log/slog"
	"net/http"

	"novelhub/internal/delivery/api/response"
	"novelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NovelHandlerParams holds dependencies for NovelHandler, injected by Fx.
type NovelHandlerParams struct {
	fx.In

	NovelUC usecase.NovelUsecase
	Logger  *slog.Logger
}

// NovelHandler serves the novel catalogue.
type NovelHandler struct {
	novelUC usecase.NovelUsecase
	logger  *slog.Logger
}

// NewNovelHandler is the constructor for NovelHandler
func NewNovelHandler(params NovelHandlerParams) *NovelHandler {
	return &NovelHandler{
		novelUC: params.NovelUC,
		logger:  params.Logger,
	}
}

// ListNovels handles listing every novel
func (h *NovelHandler) ListNovels(c echo.Context) error {
	novels, err := h.novelUC.ListNovels(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries := make([]usecase.NovelSummary, 0, len(novels))
	for _, novel := range novels {
		summaries = append(summaries, usecase.NewNovelSummary(novel))
	}

	return response.Success(c, http.StatusOK, summaries)
}

// GetNovel handles retrieving a novel by slug or id
func (h *NovelHandler) GetNovel(c echo.Context) error {
	novel, err := h.novelUC.GetNovel(c.Request().Context(), c.Param("novel"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewNovelSummary(novel))
}
