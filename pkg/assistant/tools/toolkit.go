package tools

import (
	"context"
	"log"

	"shop-assistant-be/internal/repository/memory"
	"shop-assistant-be/pkg/catalog"
	"shop-assistant-be/pkg/llm"
	"shop-assistant-be/pkg/store"
)

// Retriever is the vector-search collaborator the hybrid tool falls back to.
// Implementations return scored documents ordered by similarity.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]store.Document, error)
}

// Toolkit bundles the seven query tools with their shared dependencies:
// the immutable catalog, per-conversation session state, and the retrieval
// and language-model collaborators used by the hybrid search tool.
type Toolkit struct {
	catalog     *catalog.Store
	sessions    *memory.SessionRepository
	retriever   Retriever
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewToolkit(
	cat *catalog.Store,
	sessions *memory.SessionRepository,
	retriever Retriever,
	llmProvider llm.LLMProvider,
	logger *log.Logger,
) *Toolkit {
	return &Toolkit{
		catalog:     cat,
		sessions:    sessions,
		retriever:   retriever,
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// session resolves the conversation context for a tool call.
func (t *Toolkit) session(sessionID string) *store.Session {
	return t.sessions.GetOrCreate(sessionID)
}

// normalizeField maps any unknown selector to the default sale price field.
func normalizeField(field string) string {
	if field == catalog.FieldListedPrice {
		return catalog.FieldListedPrice
	}
	return catalog.FieldSalePrice
}
