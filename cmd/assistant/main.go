package main

import (
	"context"
	"log"

	"shop-assistant-be/internal/bootstrap"
	"shop-assistant-be/internal/config"
	"shop-assistant-be/internal/server"
	"shop-assistant-be/internal/tracer"
	"shop-assistant-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (vector search for free-text fallback)
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies
	container := bootstrap.NewAssistantContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.NewAssistant(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
