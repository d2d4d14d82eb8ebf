package main

import (
	"context"
	"log"
	"time"

	"careerverse/internal/config"
	dbpostgres "careerverse/internal/database/postgres"
	"careerverse/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() { _ = db.Close() }()

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("job catalog seeded")
}
