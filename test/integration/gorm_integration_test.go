package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/repository/specification"
	"shop-assistant-be/internal/repository/unitofwork"
	"shop-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ProductRepository())
	assert.NotNil(t, uow.ProductEmbeddingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Product Repository", func(t *testing.T) {
		count, err := uow.ProductRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Product count: %d", count)
	})

	t.Run("Check Product Embedding Repository", func(t *testing.T) {
		count, err := uow.ProductEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ProductEmbedding count: %d", count)
	})

	t.Run("Check Transactional Product With Embeddings", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		productId := uuid.New()
		originalPrice := int64(2_400_000)
		discount := 20
		product := &entity.Product{
			Id:            productId,
			Name:          "integration-test-product-" + uuid.New().String(),
			Price:         1_920_000,
			OriginalPrice: &originalPrice,
			Discount:      &discount,
			Labels:        []string{"integration", "test"},
		}

		err = uow.ProductRepository().Create(ctx, product)
		assert.NoError(t, err)

		vector := make([]float32, 768)
		vector[0] = 1.0
		embedding := &entity.ProductEmbedding{
			Id:             uuid.New(),
			ProductId:      productId,
			ChunkIndex:     0,
			Document:       "Tên: " + product.Name,
			EmbeddingValue: vector,
		}

		err = uow.ProductEmbeddingRepository().CreateBulk(ctx, []*entity.ProductEmbedding{embedding})
		assert.NoError(t, err)

		found, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: productId})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, product.Name, found.Name)
			assert.Equal(t, []string{"integration", "test"}, found.Labels)
		}

		err = uow.ProductEmbeddingRepository().DeleteByProductId(ctx, productId)
		assert.NoError(t, err)
		err = uow.ProductRepository().Delete(ctx, productId)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Product with Embedding in Transaction")
	})
}
