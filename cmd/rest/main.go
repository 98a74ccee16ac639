package main

import (
	"context"
	"log"

	"townmate-be/internal/bootstrap"
	"townmate-be/internal/config"
	"townmate-be/internal/server"
	"townmate-be/internal/tracer"
	"townmate-be/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies (container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	go func() {
		log.Println("Background: Starting Outcome Consumer...")
		if err := container.OutcomeService.Consume(context.Background()); err != nil {
			log.Printf("Background Outcome Consumer Error: %v", err)
		}
	}()

	// 5. Initialize server
	srv := server.New(cfg, container)

	// 6. Run server
	log.Fatal(srv.Run())
}
