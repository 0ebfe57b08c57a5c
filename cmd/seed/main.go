package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/repository/unitofwork"
	"shop-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	inPath := flag.String("in", "data/processed_products.json", "processed products JSON (output of cmd/convert)")
	flag.Parse()

	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("Error: failed to read %s: %v", *inPath, err)
	}

	var seeds []dto.SeedProduct
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("Error: failed to parse %s: %v", *inPath, err)
	}

	color.Cyan("Seeding %d products...", len(seeds))

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: failed to begin transaction: %v", err)
	}
	defer uow.Rollback()

	// Full reseed: wipe embeddings first, then products
	if err := uow.ProductEmbeddingRepository().DeleteAllUnscoped(ctx); err != nil {
		log.Fatalf("Error: failed to clear embeddings: %v", err)
	}
	if err := uow.ProductRepository().DeleteAllUnscoped(ctx); err != nil {
		log.Fatalf("Error: failed to clear products: %v", err)
	}

	products := make([]*entity.Product, len(seeds))
	for i, s := range seeds {
		products[i] = &entity.Product{
			Id:            uuid.New(),
			Name:          s.Name,
			Price:         s.Price,
			OriginalPrice: s.OriginalPrice,
			Discount:      s.Discount,
			Rating:        s.Rating,
			Image:         s.Image,
			Labels:        s.Labels,
			CreatedAt:     time.Now(),
		}
	}

	if len(products) > 0 {
		if err := uow.ProductRepository().CreateBulk(ctx, products); err != nil {
			log.Fatalf("Error: failed to create products: %v", err)
		}
	}

	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: failed to commit: %v", err)
	}

	color.Green("✅ Seeded %d products. Run cmd/ingest to build embeddings.", len(products))
}
