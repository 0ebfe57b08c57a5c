package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type stubAssistantService struct{}

func (s *stubAssistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	return &dto.ChatResponse{Response: "echo: " + req.Message}, nil
}

func newChatApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.BridgeErrorMiddleware())
	NewAssistantController(&stubAssistantService{}).RegisterRoutes(app)
	return app
}

func TestAssistantChatReturnsPlainResponseBody(t *testing.T) {
	app := newChatApp()

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message": "xin chào"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, fiber.StatusOK)
	}

	body, _ := io.ReadAll(res.Body)
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if parsed["response"] != "echo: xin chào" {
		t.Errorf(`body = %s, want {"response": "echo: xin chào"}`, body)
	}
	if _, ok := parsed["success"]; ok {
		t.Errorf("chat responses must not carry the API envelope: %s", body)
	}
}

func TestAssistantChatMissingMessageReturnsFlatError(t *testing.T) {
	app := newChatApp()

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, fiber.StatusBadRequest)
	}

	body, _ := io.ReadAll(res.Body)
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if msg, ok := parsed["error"].(string); !ok || msg == "" {
		t.Errorf(`body = %s, want {"error": <message>}`, body)
	}
	if _, ok := parsed["success"]; ok {
		t.Errorf("chat errors must not carry the API envelope: %s", body)
	}
}
