package app

import (
	"context"
	"time"

	"careerverse/internal/config"
	"careerverse/internal/database"
	dbpostgres "careerverse/internal/database/postgres"
	"careerverse/internal/profilestore"
	"careerverse/internal/repository"
	"careerverse/internal/usecase"
	"careerverse/internal/ws"

	"go.uber.org/zap"
)

// Container owns every stateful dependency: the catalog database, the
// profile document store, and the bridge hub. Exactly one store
// connection exists per process; everything else reaches it through
// the container.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Store *profilestore.Redis
	Hub   *ws.Hub

	Catalog     repository.JobCatalogRepository
	Synthesizer usecase.SynthesizerUsecase
	Matcher     usecase.MatcherUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store, err := profilestore.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	catalog := repository.NewPostgresJobCatalogRepository(db)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Store:       store,
		Hub:         hub,
		Catalog:     catalog,
		Synthesizer: usecase.NewSynthesizer(store, logger),
		Matcher:     usecase.NewMatcher(store, catalog),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Store != nil {
		_ = c.Store.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
