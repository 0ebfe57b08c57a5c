package server

import (
	"log"

	"shop-assistant-be/internal/bootstrap"
	"shop-assistant-be/internal/config"
	"shop-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app  *fiber.App
	port string
}

// New builds the storefront API server (product CRUD + chat proxy).
func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := newApp(cfg, serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:  app,
		port: cfg.App.Port,
	}
}

// NewAssistant builds the assistant chat server. Its failures render as the
// flat {"error": ...} body the storefront proxy parses, not the API envelope.
func NewAssistant(cfg *config.Config, container *bootstrap.AssistantContainer) *Server {
	app := newApp(cfg, serverutils.BridgeErrorMiddleware())

	container.AssistantController.RegisterRoutes(app)

	return &Server{
		app:  app,
		port: cfg.App.AssistantPort,
	}
}

func newApp(cfg *config.Config, errorMiddleware fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(errorMiddleware)

	return app
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.port)
	return s.app.Listen(":" + s.port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ProductController.RegisterRoutes(api)
	c.ChatbotController.RegisterRoutes(api)
}
