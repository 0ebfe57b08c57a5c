package retrieval

import (
	"context"
	"fmt"

	"shop-assistant-be/internal/repository/unitofwork"
	"shop-assistant-be/pkg/embedding"
	"shop-assistant-be/pkg/store"
)

const taskTypeQuery = "RETRIEVAL_QUERY"

// ProductRetriever finds product document chunks semantically close to a
// free-text query using the pgvector embedding store.
type ProductRetriever struct {
	embedder   embedding.EmbeddingProvider
	uowFactory unitofwork.RepositoryFactory
}

func NewProductRetriever(embedder embedding.EmbeddingProvider, uowFactory unitofwork.RepositoryFactory) *ProductRetriever {
	return &ProductRetriever{
		embedder:   embedder,
		uowFactory: uowFactory,
	}
}

func (r *ProductRetriever) Retrieve(ctx context.Context, query string, topK int) ([]store.Document, error) {
	res, err := r.embedder.Generate(query, taskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.ProductEmbeddingRepository().SearchSimilarWithScore(ctx, res.Embedding.Values, topK, 0)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	docs := make([]store.Document, 0, len(scored))
	for _, s := range scored {
		docs = append(docs, store.Document{
			ID:      s.Embedding.Id.String(),
			Title:   s.ProductName,
			Content: s.Embedding.Document,
			Score:   float32(s.Similarity),
			Metadata: map[string]interface{}{
				"id":   s.Embedding.ProductId.String(),
				"name": s.ProductName,
			},
		})
	}
	return docs, nil
}
