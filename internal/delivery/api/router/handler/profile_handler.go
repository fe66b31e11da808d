package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "novelhub/internal/delivery/context"
	"novelhub/internal/delivery/api/response"
	"novelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the signed-in reader's profile
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetMe returns the reader's profile, provisioning it on first sign-in
func (h *ProfileHandler) GetMe(c echo.Context) error {
	profile, err := h.profileUC.EnsureProfile(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewProfileOutput(profile))
}
