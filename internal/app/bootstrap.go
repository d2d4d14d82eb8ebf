package app

import (
	"fmt"
	"strings"

	"careerverse/internal/config"
	"careerverse/internal/delivery/http/middleware"
	"careerverse/internal/delivery/http/routes"
	"careerverse/internal/pkg/jwt"
	"careerverse/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap wires the container, the bridge router, and the HTTP
// surface. The returned cleanup closes the store and database.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	router := ws.NewRouter(logger)
	registerBridgeActions(router, container)
	bridge := ws.NewHandler(container.Hub, router, jwtSvc, logger)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(routes.Deps{
		JWT:               jwtSvc,
		Store:             container.Store,
		Catalog:           container.Catalog,
		Synthesizer:       container.Synthesizer,
		Matcher:           container.Matcher,
		Bridge:            bridge,
		SessionTTLSeconds: int64(cfg.JWT.AccessExpiresIn.Seconds()),
	})
	registry.Register(f)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
