package chat

import (
	"context"

	"veritek/models"

	"go.uber.org/zap"
)

// ChatService defines the assistant operations exposed to the website widget.
type ChatService interface {
	StartSession(ctx context.Context) (*models.SessionResponse, error)
	HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
	History(ctx context.Context, sessionID string) ([]models.Message, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Store  SessionStore
	Rules  []Rule
	Logger *zap.Logger
}

func NewDefaultChatService(store SessionStore, logger *zap.Logger) *DefaultChatService {
	return &DefaultChatService{
		Store:  store,
		Rules:  DefaultRules(),
		Logger: logger,
	}
}
