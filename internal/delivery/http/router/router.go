// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"folio/internal/delivery/http/middleware"
	"folio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PortfolioHandler *handler.PortfolioHandler
	ContactHandler   *handler.ContactHandler
	NoteHandler      *handler.NoteHandler
	SessionHandler   *handler.SessionHandler
	ShareHandler     *handler.ShareHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	portfolioHandler *handler.PortfolioHandler
	contactHandler   *handler.ContactHandler
	noteHandler      *handler.NoteHandler
	sessionHandler   *handler.SessionHandler
	shareHandler     *handler.ShareHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		portfolioHandler: params.PortfolioHandler,
		contactHandler:   params.ContactHandler,
		noteHandler:      params.NoteHandler,
		sessionHandler:   params.SessionHandler,
		shareHandler:     params.ShareHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public content routes; reading never requires a session.
	e.GET("/portfolio", r.portfolioHandler.Get)
	e.GET("/portfolio/projects", r.portfolioHandler.Projects)
	e.GET("/portfolio/watch", r.portfolioHandler.Watch)
	e.POST("/contact", r.contactHandler.Submit)
	e.GET("/share/qr", r.shareHandler.QR)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
	}

	// Admin routes; every write is behind a verified session token.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/logout", r.sessionHandler.Logout)
		adminGroup.PUT("/credentials", r.sessionHandler.UpdateCredentials)

		adminGroup.PUT("/portfolio", r.portfolioHandler.Replace)
		adminGroup.PUT("/portfolio/fields/:field", r.portfolioHandler.EditField)
		adminGroup.PUT("/portfolio/skills/:category", r.portfolioHandler.EditSkillCategory)
		adminGroup.POST("/portfolio/items", r.portfolioHandler.AddItem)
		adminGroup.DELETE("/portfolio/fields/:field/items/:index", r.portfolioHandler.DeleteItem)
		adminGroup.PUT("/portfolio/profile-image", r.portfolioHandler.UpdateProfileImage)

		adminGroup.GET("/inbox", r.contactHandler.List)
		adminGroup.PUT("/inbox/:id/read", r.contactHandler.MarkRead)
		adminGroup.DELETE("/inbox/:id", r.contactHandler.Delete)

		adminGroup.POST("/notes", r.noteHandler.Add)
		adminGroup.GET("/notes", r.noteHandler.List)
		adminGroup.DELETE("/notes/:id", r.noteHandler.Delete)
	}
}
