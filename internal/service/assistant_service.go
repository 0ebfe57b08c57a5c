package service

import (
	"context"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/pkg/assistant/agent"
)

// IAssistantService answers storefront chat messages using the tool agent.
type IAssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type assistantService struct {
	dispatcher *agent.Dispatcher
}

func NewAssistantService(dispatcher *agent.Dispatcher) IAssistantService {
	return &assistantService{
		dispatcher: dispatcher,
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	answer := s.dispatcher.Handle(ctx, req.SessionId, req.Message)
	return &dto.ChatResponse{Response: answer}, nil
}
