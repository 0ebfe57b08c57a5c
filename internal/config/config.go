package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Assistant AssistantConfig
	Ai        AIConfig
	Keys      APIKeys
}

type AppConfig struct {
	Port               string
	AssistantPort      string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type AssistantConfig struct {
	CatalogPath    string
	ChatbotURL     string
	ChatbotTimeout time.Duration
	SessionTTL     time.Duration
	LLMLogPath     string
	EmbedTopic     string // Product embedding topic
	ChunkSize      int
	ChunkOverlap   int
}

type APIKeys struct {
	GoogleGemini string
	Jina         string
	HuggingFace  string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini", "ollama" or "jina"
	EmbeddingModel    string
	OllamaBaseURL     string
	LLMProvider       string // "ollama" or "huggingface"
	LLMModel          string // e.g. "llama3", "qwen2.5"
	LLMBaseURL        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			AssistantPort:      getEnv("ASSISTANT_PORT", "8080"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Assistant: AssistantConfig{
			CatalogPath:    getEnv("CATALOG_CSV_PATH", "data/products.csv"),
			ChatbotURL:     getEnv("CHATBOT_URL", "http://localhost:8080/chat"),
			ChatbotTimeout: time.Duration(getEnvAsInt("CHATBOT_TIMEOUT_SECONDS", 300)) * time.Second,
			SessionTTL:     time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
			LLMLogPath:     getEnv("LLM_LOG_PATH", "logs/llm_agent.log"),
			EmbedTopic:     getEnv("EMBED_PRODUCT_TOPIC_NAME", "EMBED_PRODUCT_CONTENT"),
			ChunkSize:      getEnvAsInt("EMBED_CHUNK_SIZE", 500),
			ChunkOverlap:   getEnvAsInt("EMBED_CHUNK_OVERLAP", 100),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "qwen2.5"),
			LLMBaseURL:        getEnv("LLM_BASE_URL", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Jina:         getEnv("JINA_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
