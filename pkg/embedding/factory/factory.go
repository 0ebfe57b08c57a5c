package factory

import (
	"fmt"

	"shop-assistant-be/pkg/embedding"
	"shop-assistant-be/pkg/embedding/jina"
)

func NewEmbeddingProvider(providerType, modelName, baseURL, apiKey string) (embedding.EmbeddingProvider, error) {
	switch providerType {
	case "ollama":
		return embedding.NewOllamaProvider(baseURL, modelName), nil
	case "gemini":
		return embedding.NewGeminiProvider(apiKey), nil
	case "jina":
		return jina.NewJinaProvider(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
