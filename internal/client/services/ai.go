package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
)

// AIService talks to the course tutor chat.
type AIService interface {
	Ask(ctx context.Context, req models.ChatRequest) (string, error)
}

type aiService struct {
	client client.Client
}

func NewAIService(c client.Client) AIService {
	return &aiService{client: c}
}

func (s *aiService) Ask(ctx context.Context, req models.ChatRequest) (string, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/ai_chat.php", req, &raw); err != nil {
		return "", fmt.Errorf("ai chat error: %w", err)
	}

	var reply models.ChatReply
	if err := client.DecodeData(raw, &reply); err != nil {
		return "", err
	}
	return reply.Reply, nil
}
