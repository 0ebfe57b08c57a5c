package controller

import (
	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/pkg/serverutils"
	"shop-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatProxyService service.IChatProxyService
}

func NewChatbotController(chatProxyService service.IChatProxyService) IChatbotController {
	return &chatbotController{
		chatProxyService: chatProxyService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Post("chat", c.Chat)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatProxyService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}
