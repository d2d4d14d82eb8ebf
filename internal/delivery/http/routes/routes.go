package routes

import (
	"careerverse/internal/delivery/http/handler"
	"careerverse/internal/pkg/jwt"
	"careerverse/internal/profilestore"
	"careerverse/internal/repository"
	"careerverse/internal/usecase"
	"careerverse/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the route tree needs; the app container
// builds it once at bootstrap.
type Deps struct {
	JWT         jwt.Service
	Store       profilestore.Store
	Catalog     repository.JobCatalogRepository
	Synthesizer usecase.SynthesizerUsecase
	Matcher     usecase.MatcherUsecase
	Bridge      *ws.Handler

	SessionTTLSeconds int64
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps, health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.deps.Bridge != nil {
		app.Get("/ws", r.deps.Bridge.HandleBridge)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
