package main

import (
	"context"
	"log"

	"hr-chatbot-be/internal/bootstrap"
	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/pkg/database"
)

// Batch-ingests the base document corpus and exits. Run once against a
// fresh database, or again after editing the documents directory.
func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING must be set: ingesting into the in-memory store would be lost on exit")
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	n, err := container.Pipeline.IngestDirectory(context.Background(), cfg.Docs.DocumentsDir)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	log.Printf("✅ Ingested %d documents from %s", n, cfg.Docs.DocumentsDir)
}
