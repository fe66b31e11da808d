package handler

import (
	"net/http"
	"testing"

	"novelhub/internal/domain/entity"
	domainerrors "novelhub/internal/domain/errors"
	mockusecase "novelhub/internal/mocks/usecase"
	"novelhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNovelTestServer(t *testing.T) (*mockusecase.MockNovelUsecase, *NovelHandler) {
	uc := mockusecase.NewMockNovelUsecase(t)

	return uc, NewNovelHandler(NovelHandlerParams{NovelUC: uc, Logger: discardLogger})
}

func TestNovelHandler_ListNovels(t *testing.T) {
	uc, h := newNovelTestServer(t)
	uc.EXPECT().ListNovels(mock.Anything).Return([]*entity.Novel{
		{ID: uuid.New(), Slug: "moon", Title: "Moon"},
		{ID: uuid.New(), Slug: "sun", Title: "Sun"},
	}, nil)

	e := newTestEcho()
	e.GET("/api/v1/novels", h.ListNovels)
	status, env := serve(t, e, http.MethodGet, "/api/v1/novels", nil)

	assert.Equal(t, http.StatusOK, status)
	got := decodeData[[]usecase.NovelSummary](t, env)
	require.Len(t, got, 2)
	assert.Equal(t, "moon", got[0].Slug)
}

func TestNovelHandler_GetNovel(t *testing.T) {
	tests := []struct {
		name       string
		novel      *entity.Novel
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "found", novel: &entity.Novel{ID: uuid.New(), Slug: "moon", Title: "Moon"}, wantStatus: http.StatusOK},
		{name: "not found", err: domainerrors.ErrNovelNotFound, wantStatus: http.StatusNotFound, wantCode: "NOVEL_NOT_FOUND"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, h := newNovelTestServer(t)
			uc.EXPECT().GetNovel(mock.Anything, "moon").Return(tt.novel, tt.err)

			e := newTestEcho()
			e.GET("/api/v1/novels/:novel", h.GetNovel)
			status, env := serve(t, e, http.MethodGet, "/api/v1/novels/moon", nil)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}
			assert.Equal(t, "Moon", decodeData[usecase.NovelSummary](t, env).Title)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	status, env := serve(t, e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", decodeData[map[string]string](t, env)["status"])
}
