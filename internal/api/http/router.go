package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idms/employee-portal/internal/api/http/handlers"
	"github.com/idms/employee-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employee       *handlers.EmployeeHandler
	Assistant      *handlers.AssistantHandler
	Knowledge      *handlers.KnowledgeHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/session", cfg.Auth.Session)
	authGroup.Post("/logout", cfg.Auth.Logout)

	api.Get("/employee/me", cfg.AuthMiddleware.Handle, cfg.Employee.Me)

	api.Post("/assistant/query", cfg.Assistant.Query)
	api.Post("/assistant/knowledge-gaps", cfg.Assistant.KnowledgeGaps)

	api.Get("/faq", cfg.Knowledge.FAQ)
	api.Get("/knowledge", cfg.Knowledge.List)
	api.Get("/knowledge/:id", cfg.Knowledge.Get)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/knowledge", cfg.Knowledge.Create)
	protected.Put("/knowledge/:id", cfg.Knowledge.Update)
	protected.Delete("/knowledge/:id", cfg.Knowledge.Delete)
	protected.Post("/knowledge/suggest-categories", cfg.Knowledge.SuggestCategories)
	protected.Post("/knowledge/suggest-tags", cfg.Knowledge.SuggestTags)
	protected.Get("/analytics/summary", cfg.Analytics.Summary)
}
