package main

import (
	"context"
	"errors"
	"log"

	"shop-assistant-be/internal/config"
	"shop-assistant-be/internal/repository/unitofwork"
	"shop-assistant-be/internal/service"
	"shop-assistant-be/pkg/database"
	embeddingfactory "shop-assistant-be/pkg/embedding/factory"

	"github.com/fatih/color"
)

// Builds pgvector embeddings for every product currently in the database.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	apiKey := cfg.Keys.GoogleGemini
	if cfg.Ai.EmbeddingProvider == "jina" {
		apiKey = cfg.Keys.Jina
	}
	embeddingProvider, err := embeddingfactory.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.OllamaBaseURL,
		apiKey,
	)
	if err != nil {
		log.Fatalf("Error: failed to initialize embedding provider: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	embedder := service.NewConsumerService(
		nil, // no message bus, direct processing
		"",
		uowFactory,
		embeddingProvider,
		cfg.Assistant.ChunkSize,
		cfg.Assistant.ChunkOverlap,
	)

	ctx := context.Background()
	products, err := uowFactory.NewUnitOfWork(ctx).ProductRepository().FindAll(ctx)
	if err != nil {
		log.Fatalf("Error: failed to list products: %v", err)
	}

	color.Cyan("Embedding %d products...", len(products))

	done, failed := 0, 0
	for _, p := range products {
		if err := embedder.ProcessProduct(ctx, p.Id); err != nil {
			if errors.Is(err, service.ErrProductGone) {
				continue
			}
			log.Printf("Error: product %s: %v", p.Id, err)
			failed++
			continue
		}
		done++
	}

	if failed > 0 {
		color.Yellow("%d products failed, re-run to retry", failed)
	}
	color.Green("✅ Embedded %d products", done)
}
