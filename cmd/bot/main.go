package main

import (
	"context"
	"log"

	"grafica-order-bot/internal/bootstrap"
	"grafica-order-bot/internal/config"
	"grafica-order-bot/internal/server"
	"grafica-order-bot/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Fatalf("Unable to start order event consumer: %v", err)
	}

	// 5. Run Server (webhook + keep-alive)
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
