package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"veritek/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubChatService answers with canned values so handler behavior can be
// tested without Redis.
type stubChatService struct {
	resp *models.ChatResponse
	err  error
}

func (s *stubChatService) StartSession(_ context.Context) (*models.SessionResponse, error) {
	return &models.SessionResponse{SessionID: "abc", Greeting: "hi"}, nil
}

func (s *stubChatService) HandleMessage(_ context.Context, _ models.ChatRequest) (*models.ChatResponse, error) {
	return s.resp, s.err
}

func (s *stubChatService) ResetSession(_ context.Context, _ string) error {
	return nil
}

func (s *stubChatService) History(_ context.Context, _ string) ([]models.Message, error) {
	return nil, nil
}

func newChatRouter(svc *stubChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/chat/message", h.MessageHandler)
	r.GET("/api/chat/history/:sessionID", h.HistoryHandler)
	return r
}

func TestMessageHandlerReturnsReply(t *testing.T) {
	svc := &stubChatService{resp: &models.ChatResponse{
		SessionID: "s1",
		Accepted:  true,
		Reply:     "hello",
		TypingMs:  1200,
	}}
	r := newChatRouter(svc)

	body, _ := json.Marshal(models.ChatRequest{SessionID: "s1", Text: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Accepted)
	assert.Equal(t, "hello", got.Reply)
}

func TestMessageHandlerRejectsBadBody(t *testing.T) {
	r := newChatRouter(&stubChatService{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader([]byte(`{"text":""}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryHandlerReturnsEmptyList(t *testing.T) {
	r := newChatRouter(&stubChatService{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"messages":[]`)
}
