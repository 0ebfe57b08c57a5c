package contract

import (
	"context"

	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredProductEmbedding wraps ProductEmbedding with its similarity score
// and the name of the product the chunk belongs to.
type ScoredProductEmbedding struct {
	Embedding   *entity.ProductEmbedding
	ProductName string
	Similarity  float64 // 0.0 to 1.0 (1.0 = identical)
}

type ProductEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.ProductEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.ProductEmbedding) error
	Update(ctx context.Context, embedding *entity.ProductEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProductId(ctx context.Context, productId uuid.UUID) error
	DeleteAllUnscoped(ctx context.Context) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Advanced
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.ProductEmbedding, error)
	// SearchSimilarWithScore returns embeddings with their similarity scores, filtered by threshold
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredProductEmbedding, error)
}
