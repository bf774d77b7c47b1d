package main

import (
	"context"
	"log"

	"hr-chatbot-be/internal/bootstrap"
	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/internal/hrmock"
	"hr-chatbot-be/internal/server"
	"hr-chatbot-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (optional: falls back to the in-memory store)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start the mock HR backend
	go func() {
		log.Printf("Background: Mock HR API on http://localhost:%s", cfg.HR.Port)
		if err := hrmock.New().Listen(":" + cfg.HR.Port); err != nil {
			log.Printf("Mock HR API error: %v", err)
		}
	}()

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Queue the base corpus for ingestion
	if n, err := container.PublisherService.PublishIngestDirectory(cfg.Docs.DocumentsDir); err != nil {
		log.Printf("Base corpus ingestion could not be queued: %v", err)
	} else {
		log.Printf("Queued %d base documents for ingestion", n)
	}

	// 7. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
