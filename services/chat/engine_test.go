package chat

import (
	"context"
	"errors"
	"testing"

	"veritek/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory SessionStore for tests.
type memStore struct {
	states    map[string]*models.ConversationState
	msgs      map[string][]models.Message
	busy      bool
	failState bool
}

func newMemStore() *memStore {
	return &memStore{
		states: make(map[string]*models.ConversationState),
		msgs:   make(map[string][]models.Message),
	}
}

func (m *memStore) GetState(_ context.Context, sessionID string) (*models.ConversationState, error) {
	if m.failState {
		return nil, errors.New("redis unavailable")
	}
	if st, ok := m.states[sessionID]; ok {
		cp := *st
		return &cp, nil
	}
	return models.NewConversationState(), nil
}

func (m *memStore) SetState(_ context.Context, sessionID string, state *models.ConversationState) error {
	if m.failState {
		return errors.New("redis unavailable")
	}
	cp := *state
	m.states[sessionID] = &cp
	return nil
}

func (m *memStore) AppendMessage(_ context.Context, sessionID string, msg models.Message) error {
	m.msgs[sessionID] = append(m.msgs[sessionID], msg)
	return nil
}

func (m *memStore) Messages(_ context.Context, sessionID string) ([]models.Message, error) {
	return m.msgs[sessionID], nil
}

func (m *memStore) Clear(_ context.Context, sessionID string) error {
	delete(m.states, sessionID)
	delete(m.msgs, sessionID)
	return nil
}

func (m *memStore) AcquireTurn(_ context.Context, _ string) (bool, error) {
	return !m.busy, nil
}

func (m *memStore) ReleaseTurn(_ context.Context, _ string) error {
	return nil
}

func newTestService(store SessionStore) *DefaultChatService {
	return NewDefaultChatService(store, zap.NewNop())
}

func send(t *testing.T, svc *DefaultChatService, sessionID, text string) *models.ChatResponse {
	t.Helper()
	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		SessionID: sessionID,
		Text:      text,
	})
	require.NoError(t, err)
	return resp
}

func TestStartSessionGreetsAndLogs(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	resp, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Contains(t, resp.Greeting, "Veritek")
	assert.Contains(t, resp.HTML, "<strong>")

	msgs, err := svc.History(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleBot, msgs[0].Role)
}

func TestHandleMessageHappyPath(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	resp := send(t, svc, "s1", "hello")

	assert.True(t, resp.Accepted)
	assert.Equal(t, greetingResponse, resp.Reply)
	assert.Contains(t, resp.ReplyHTML, "<strong>")
	assert.GreaterOrEqual(t, resp.TypingMs, 1000)
	assert.LessOrEqual(t, resp.TypingMs, 2000)

	msgs := store.msgs["s1"]
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleBot, msgs[1].Role)
}

func TestHandleMessageDropsWhenTurnInFlight(t *testing.T) {
	store := newMemStore()
	store.busy = true
	svc := newTestService(store)

	resp := send(t, svc, "s1", "hello")

	assert.False(t, resp.Accepted)
	assert.Empty(t, resp.Reply)
	assert.Empty(t, store.msgs["s1"])
}

func TestHandleMessageDropsUnsafeInput(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	resp := send(t, svc, "s1", "<script>window.location='x'</script>")

	assert.False(t, resp.Accepted)
	assert.Empty(t, resp.Reply)
	assert.Empty(t, store.msgs["s1"], "rejected input must not be logged")
}

func TestHandleMessageDegradesOnStorageFailure(t *testing.T) {
	store := newMemStore()
	store.failState = true
	svc := newTestService(store)

	resp := send(t, svc, "s1", "hello")

	assert.True(t, resp.Accepted)
	assert.Equal(t, fallbackResponse, resp.Reply)
	assert.Contains(t, resp.ReplyHTML, "tel:+18005550142")
}

func TestDiscoveryFunnelEndToEnd(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	resp := send(t, svc, "s1", "I need help choosing a service")
	require.True(t, resp.Accepted)
	assert.Equal(t, models.PhaseDiscovering, resp.State.Phase)

	resp = send(t, svc, "s1", "1")
	require.True(t, resp.Accepted)
	assert.Equal(t, models.CategoryAutomation, resp.State.Category)
	assert.Contains(t, resp.Reply, "automation.html")

	resp = send(t, svc, "s1", "We're a pharma plant")
	require.True(t, resp.Accepted)
	assert.Equal(t, models.IndustryPharmaceutical, resp.State.Industry)
	assert.Contains(t, resp.Reply, "Pharmaceutical")
	assert.Contains(t, resp.ReplyHTML, `href="contact.html?dept=sales&amp;service=automation&amp;industry=pharmaceutical&amp;type=project"`)

	resp = send(t, svc, "s1", "start over")
	require.True(t, resp.Accepted)
	assert.Equal(t, models.PhaseIdle, resp.State.Phase)
	assert.Empty(t, resp.State.Category)
	assert.Empty(t, resp.State.Industry)
}

func TestResetSessionClearsEverything(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	send(t, svc, "s1", "hello")
	require.NotEmpty(t, store.msgs["s1"])

	require.NoError(t, svc.ResetSession(context.Background(), "s1"))
	assert.Empty(t, store.msgs["s1"])
	assert.NotContains(t, store.states, "s1")
}
