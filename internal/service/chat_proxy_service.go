package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"shop-assistant-be/internal/constant"
	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/pkg/logger"
)

// IChatProxyService forwards storefront chat messages to the assistant server.
type IChatProxyService interface {
	SendMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatProxyService struct {
	chatbotURL string
	client     *http.Client
	logger     logger.ILogger
}

func NewChatProxyService(chatbotURL string, timeout time.Duration, log logger.ILogger) IChatProxyService {
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &chatProxyService{
		chatbotURL: chatbotURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

func (s *chatProxyService) SendMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.chatbotURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Warn("chat_proxy", "Assistant server unreachable", map[string]interface{}{
			"url":   s.chatbotURL,
			"error": err.Error(),
		})
		return &dto.ChatResponse{Response: unreachableMessage(err)}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("chat_proxy", "Assistant server returned error", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return &dto.ChatResponse{Response: constant.ChatbotErrorMessage}, nil
	}

	var chatResp dto.ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("unmarshal chat response: %w", err)
	}

	return &chatResp, nil
}

// unreachableMessage distinguishes a dead assistant server from a slow one.
func unreachableMessage(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return constant.ChatbotTimeoutMessage
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return constant.ChatbotTimeoutMessage
	}
	return constant.ChatbotUnavailableMessage
}
