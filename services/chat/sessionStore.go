// File: services/chat/sessionStore.go
package chat

import (
	"context"
	"encoding/json"
	"time"

	"veritek/models"

	"github.com/go-redis/redis/v8"
)

const (
	statePrefix = "chat:state:"
	logPrefix   = "chat:log:"
	turnPrefix  = "chat:turn:"

	// turnTTL bounds how long an in-flight turn can block the next message
	// if a handler dies without releasing its lock.
	turnTTL = 10 * time.Second
)

// SessionStore keeps per-session conversation state and the append-only
// message log. Sessions expire by TTL; there is no cross-session persistence.
type SessionStore interface {
	GetState(ctx context.Context, sessionID string) (*models.ConversationState, error)
	SetState(ctx context.Context, sessionID string, state *models.ConversationState) error
	AppendMessage(ctx context.Context, sessionID string, msg models.Message) error
	Messages(ctx context.Context, sessionID string) ([]models.Message, error)
	Clear(ctx context.Context, sessionID string) error
	AcquireTurn(ctx context.Context, sessionID string) (bool, error)
	ReleaseTurn(ctx context.Context, sessionID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// GetState returns the session's funnel state, or a fresh initial state when
// the session is unknown or has expired.
func (s *RedisSessionStore) GetState(ctx context.Context, sessionID string) (*models.ConversationState, error) {
	data, err := s.client.Get(ctx, statePrefix+sessionID).Result()
	if err == redis.Nil {
		return models.NewConversationState(), nil
	}
	if err != nil {
		return nil, err
	}
	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisSessionStore) SetState(ctx context.Context, sessionID string, state *models.ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statePrefix+sessionID, b, s.ttl).Err()
}

// AppendMessage pushes one message onto the session log and refreshes the
// log's TTL so it lives exactly as long as the session.
func (s *RedisSessionStore) AppendMessage(ctx context.Context, sessionID string, msg models.Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	key := logPrefix + sessionID
	if err := s.client.RPush(ctx, key, b).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

// Messages returns the session log in insertion order.
func (s *RedisSessionStore) Messages(ctx context.Context, sessionID string) ([]models.Message, error) {
	entries, err := s.client.LRange(ctx, logPrefix+sessionID, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	var msgs []models.Message
	for _, entry := range entries {
		var msg models.Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			continue // skip corrupt entries
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// Clear removes the session's state and log.
func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, statePrefix+sessionID, logPrefix+sessionID).Err()
}

// AcquireTurn takes the per-session turn lock. It returns false when a reply
// is already in flight, in which case the incoming message is dropped rather
// than queued.
func (s *RedisSessionStore) AcquireTurn(ctx context.Context, sessionID string) (bool, error) {
	return s.client.SetNX(ctx, turnPrefix+sessionID, "1", turnTTL).Result()
}

func (s *RedisSessionStore) ReleaseTurn(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, turnPrefix+sessionID).Err()
}
