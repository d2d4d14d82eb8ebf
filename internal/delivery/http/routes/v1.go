package routes

import (
	"careerverse/internal/delivery/http/handler"
	"careerverse/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.JWT)

	authHandler := handler.NewAuthHandler(deps.JWT, deps.Store, deps.SessionTTLSeconds)
	activityHandler := handler.NewActivityHandler(deps.Synthesizer)
	profileHandler := handler.NewProfileHandler(deps.Synthesizer)
	matchHandler := handler.NewMatchHandler(deps.Matcher)
	jobsHandler := handler.NewJobsHandler(deps.Catalog)

	authHandler.RegisterRoutes(r.Group("/auth"))
	jobsHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	activityHandler.RegisterRoutes(protected)
	profileHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected)
}
