// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"novelhub/internal/delivery/api/middleware"
	"novelhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NovelHandler   *handler.NovelHandler
	ChapterHandler *handler.ChapterHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	novelHandler   *handler.NovelHandler
	chapterHandler *handler.ChapterHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		novelHandler:   params.NovelHandler,
		chapterHandler: params.ChapterHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes; readers may be anonymous unless a route says otherwise
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Identify)

	novelsGroup := apiV1.Group("/novels")
	{
		novelsGroup.GET("", r.novelHandler.ListNovels)
		novelsGroup.GET("/:novel", r.novelHandler.GetNovel)
	}

	chaptersGroup := novelsGroup.Group("/:novel/chapters")
	{
		chaptersGroup.GET("", r.chapterHandler.ListChapters)
		chaptersGroup.GET("/accessible", r.chapterHandler.ListAccessible)
		chaptersGroup.GET("/:chapter", r.chapterHandler.GetChapter)
		chaptersGroup.GET("/:chapter/navigation", r.chapterHandler.GetNavigation)
		chaptersGroup.POST("/:chapter/unlock", r.chapterHandler.UnlockChapter, r.authMiddleware.Authenticate)
	}

	// Routes for the signed-in reader
	meGroup := apiV1.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.GetMe)
	}
}
