package main

import (
	"log"

	"grafica-order-bot/internal/config"
	"grafica-order-bot/internal/model"
	"grafica-order-bot/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required")
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.OrderRow{}, &model.Employee{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✅ Migration complete: pedidos, funcionarios")
}
