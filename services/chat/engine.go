// File: services/chat/engine.go
package chat

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"veritek/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession opens a new session, seeds its state and greets the visitor.
func (s *DefaultChatService) StartSession(ctx context.Context) (*models.SessionResponse, error) {
	sessionID := uuid.New().String()

	if err := s.Store.SetState(ctx, sessionID, models.NewConversationState()); err != nil {
		return nil, err
	}

	greetingHTML := FormatResponse(welcomeResponse)
	if err := s.Store.AppendMessage(ctx, sessionID, models.Message{
		Role:      models.RoleBot,
		Content:   welcomeResponse,
		HTML:      greetingHTML,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	return &models.SessionResponse{
		SessionID: sessionID,
		Greeting:  welcomeResponse,
		HTML:      greetingHTML,
	}, nil
}

// HandleMessage runs one chat turn: take the turn lock, sanitize, match one
// rule against the current state, persist, and answer. A message arriving
// while another is in flight, or one rejected by the sanitizer, is dropped
// (accepted=false), never queued. Storage failures degrade to the fixed
// contact-us reply instead of surfacing an error to the widget.
func (s *DefaultChatService) HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	resp := &models.ChatResponse{SessionID: req.SessionID}

	acquired, err := s.Store.AcquireTurn(ctx, req.SessionID)
	if err != nil {
		return s.degrade(resp, "acquire turn", err), nil
	}
	if !acquired {
		s.Logger.Debug("Dropped chat message, turn already in flight",
			zap.String("sessionId", req.SessionID))
		return resp, nil
	}
	defer func() {
		if err := s.Store.ReleaseTurn(context.Background(), req.SessionID); err != nil {
			s.Logger.Warn("Failed to release turn lock", zap.Error(err))
		}
	}()

	clean := SanitizeInput(req.Text)
	if clean == "" {
		s.Logger.Warn("Dropped chat message after sanitization",
			zap.String("sessionId", req.SessionID))
		return resp, nil
	}

	state, err := s.Store.GetState(ctx, req.SessionID)
	if err != nil {
		return s.degrade(resp, "load state", err), nil
	}

	if err := s.Store.AppendMessage(ctx, req.SessionID, models.Message{
		Role:      models.RoleUser,
		Content:   clean,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		return s.degrade(resp, "append user message", err), nil
	}

	reply, ruleName := Match(s.Rules, strings.ToLower(clean), state)

	if err := s.Store.SetState(ctx, req.SessionID, state); err != nil {
		return s.degrade(resp, "save state", err), nil
	}

	replyHTML := FormatResponse(reply)
	if err := s.Store.AppendMessage(ctx, req.SessionID, models.Message{
		Role:      models.RoleBot,
		Content:   reply,
		HTML:      replyHTML,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		s.Logger.Warn("Failed to log bot reply", zap.Error(err))
	}

	s.Logger.Debug("Chat turn completed",
		zap.String("sessionId", req.SessionID),
		zap.String("rule", ruleName),
		zap.String("phase", string(state.Phase)))

	resp.Accepted = true
	resp.Reply = reply
	resp.ReplyHTML = replyHTML
	resp.TypingMs = typingDelayMs()
	resp.State = state
	return resp, nil
}

// ResetSession clears a session's state and message log entirely.
func (s *DefaultChatService) ResetSession(ctx context.Context, sessionID string) error {
	return s.Store.Clear(ctx, sessionID)
}

// History returns the session's message log in order.
func (s *DefaultChatService) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	return s.Store.Messages(ctx, sessionID)
}

// typingDelayMs is a pacing hint for the widget's typing indicator, 1-2
// seconds. It has no semantic effect on the reply.
func typingDelayMs() int {
	return 1000 + rand.Intn(1001)
}

// degrade turns a storage failure into the fixed contact-us reply for this
// turn. No state or log writes are retried.
func (s *DefaultChatService) degrade(resp *models.ChatResponse, op string, err error) *models.ChatResponse {
	s.Logger.Error("Chat turn degraded: "+op,
		zap.String("sessionId", resp.SessionID), zap.Error(err))
	resp.Accepted = true
	resp.Reply = fallbackResponse
	resp.ReplyHTML = FormatResponse(fallbackResponse)
	resp.TypingMs = typingDelayMs()
	return resp
}
