package integration

import (
	"context"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	"shop-assistant-be/pkg/embedding"
	"shop-assistant-be/pkg/llm"
	"shop-assistant-be/pkg/llm/ollama"
)

const (
	ollamaBaseURL        = "http://localhost:11434"
	ollamaChatModel      = "qwen2.5"
	ollamaEmbeddingModel = "nomic-embed-text"
)

// requireOllama skips the test when no Ollama server answers locally, so the
// suite stays green on machines without a model runtime.
func requireOllama(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", ollamaBaseURL, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		t.Skipf("Skipping integration test: Ollama not running at %s: %v", ollamaBaseURL, err)
	}
	defer res.Body.Close()

	t.Logf("✅ Ollama is running at %s (status: %d)", ollamaBaseURL, res.StatusCode)
}

// TestOllamaGenerate verifies basic prompt completion through the provider.
func TestOllamaGenerate(t *testing.T) {
	requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	provider := ollama.NewOllamaProvider(ollamaBaseURL, ollamaChatModel)
	response, err := provider.Generate(ctx, "Say 'Ollama works!' in one sentence.", llm.WithTemperature(0.0))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Logf("✅ Response: %s", response)

	if response == "" {
		t.Error("Response should not be empty")
	}
}

// TestOllamaMultiTurnChat verifies the model keeps conversation context.
func TestOllamaMultiTurnChat(t *testing.T) {
	requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	provider := ollama.NewOllamaProvider(ollamaBaseURL, ollamaChatModel)
	history := []llm.Message{
		{Role: "user", Content: "My name is John"},
		{Role: "assistant", Content: "Nice to meet you, John!"},
		{Role: "user", Content: "What is my name?"},
	}

	response, err := provider.Chat(ctx, history)
	if err != nil {
		t.Fatalf("Multi-turn conversation failed: %v", err)
	}

	t.Logf("✅ Response: %s", response)

	if !strings.Contains(response, "John") {
		t.Logf("⚠️ Response may not correctly remember the name. Response: %s", response)
	}
}

// TestOllamaToolSelection verifies the model can produce the structured tool
// call JSON the dispatcher asks for.
func TestOllamaToolSelection(t *testing.T) {
	requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	provider := ollama.NewOllamaProvider(ollamaBaseURL, ollamaChatModel)
	prompt := `Select a tool for the question "sản phẩm nào đắt nhất".
Respond ONLY with JSON: {"tool": "get_highest_price"} or {"tool": "search_text"}`

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Logf("✅ Response: %s", response)

	if !strings.Contains(response, "{") || !strings.Contains(response, "tool") {
		t.Logf("⚠️ Response is not the expected JSON shape. Response: %s", response)
	}
}

// TestOllamaEmbedding verifies the embedding provider returns a normalized
// vector usable for cosine search.
func TestOllamaEmbedding(t *testing.T) {
	requireOllama(t)

	provider := embedding.NewOllamaProvider(ollamaBaseURL, ollamaEmbeddingModel)
	response, err := provider.Generate("Máy hút bụi không dây", "RETRIEVAL_QUERY")
	if err != nil {
		t.Fatalf("Embedding generation failed: %v", err)
	}

	values := response.Embedding.Values
	if len(values) == 0 {
		t.Fatal("Embedding should not be empty")
	}

	var magnitude float64
	for _, v := range values {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	t.Logf("✅ Embedding dimension: %d, magnitude: %.4f", len(values), magnitude)

	if math.Abs(magnitude-1.0) > 0.01 {
		t.Errorf("Embedding should be normalized, got magnitude %.4f", magnitude)
	}
}
