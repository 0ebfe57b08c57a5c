package bootstrap

import (
	"log"

	"shop-assistant-be/internal/config"
	"shop-assistant-be/internal/controller"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/repository/unitofwork"
	"shop-assistant-be/internal/service"
	embeddingfactory "shop-assistant-be/pkg/embedding/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProductController controller.IProductController
	ChatbotController controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	embeddingProvider, err := embeddingfactory.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.OllamaBaseURL,
		embeddingAPIKey(cfg),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	publisherService := service.NewPublisherService(pubSub, cfg.Assistant.EmbedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Assistant.EmbedTopic,
		uowFactory,
		embeddingProvider,
		cfg.Assistant.ChunkSize,
		cfg.Assistant.ChunkOverlap,
	)

	productService := service.NewProductService(uowFactory, publisherService)
	chatProxyService := service.NewChatProxyService(
		cfg.Assistant.ChatbotURL,
		cfg.Assistant.ChatbotTimeout,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		ProductController: controller.NewProductController(productService),
		ChatbotController: controller.NewChatbotController(chatProxyService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

func embeddingAPIKey(cfg *config.Config) string {
	switch cfg.Ai.EmbeddingProvider {
	case "jina":
		return cfg.Keys.Jina
	default:
		return cfg.Keys.GoogleGemini
	}
}
