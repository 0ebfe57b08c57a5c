package bootstrap

import (
	"log"
	"os"
	"path/filepath"

	"shop-assistant-be/internal/config"
	"shop-assistant-be/internal/controller"
	"shop-assistant-be/internal/repository/memory"
	"shop-assistant-be/internal/repository/unitofwork"
	"shop-assistant-be/internal/service"
	"shop-assistant-be/pkg/assistant/agent"
	"shop-assistant-be/pkg/assistant/tools"
	"shop-assistant-be/pkg/catalog"
	embeddingfactory "shop-assistant-be/pkg/embedding/factory"
	llmfactory "shop-assistant-be/pkg/llm/factory"
	"shop-assistant-be/pkg/retrieval"

	"gorm.io/gorm"
)

// AssistantContainer wires the chat assistant server: catalog, sessions,
// tools, retrieval and the dispatching agent.
type AssistantContainer struct {
	AssistantController controller.IAssistantController
	Catalog             *catalog.Store
}

func NewAssistantContainer(db *gorm.DB, cfg *config.Config) *AssistantContainer {
	// 1. Catalog
	cat, err := catalog.LoadCSV(cfg.Assistant.CatalogPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load catalog from %s: %v", cfg.Assistant.CatalogPath, err)
	}
	log.Printf("[INFO] Catalog loaded: %d products", cat.Len())

	// 2. Sessions
	sessionRepo := memory.NewSessionRepository(cfg.Assistant.SessionTTL)

	// 3. AI Providers
	embeddingProvider, err := embeddingfactory.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.OllamaBaseURL,
		embeddingAPIKey(cfg),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}

	llmBaseURL := cfg.Ai.LLMBaseURL
	if llmBaseURL == "" && cfg.Ai.LLMProvider == "ollama" {
		llmBaseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := llmfactory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Retrieval over pgvector
	uowFactory := unitofwork.NewRepositoryFactory(db)
	retriever := retrieval.NewProductRetriever(embeddingProvider, uowFactory)

	// 5. Tools + Agent
	agentLogger := initAgentLogger(cfg.Assistant.LLMLogPath)
	toolkit := tools.NewToolkit(cat, sessionRepo, retriever, llmProvider, agentLogger)
	dispatcher := agent.NewDispatcher(llmProvider, toolkit, agentLogger)

	assistantService := service.NewAssistantService(dispatcher)

	return &AssistantContainer{
		AssistantController: controller.NewAssistantController(assistantService),
		Catalog:             cat,
	}
}

func initAgentLogger(logPath string) *log.Logger {
	if logPath == "" {
		logPath = filepath.Join(".", "logs", "llm_agent.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-AGENT] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
