package ai

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"statutesync/models"

	"github.com/go-redis/redis/v8"
)

const aiContextPrefix = "ai:ctx:"

// ContextStore keeps one chat transcript per session key.
type ContextStore interface {
	Get(ctx context.Context, sessionKey string) (*models.ChatContext, error)
	Set(ctx context.Context, sessionKey string, chat *models.ChatContext) error
	Clear(ctx context.Context, sessionKey string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionKey string) (*models.ChatContext, error) {
	key := aiContextPrefix + sessionKey
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chat models.ChatContext
	if err := json.Unmarshal([]byte(data), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionKey string, chat *models.ChatContext) error {
	key := aiContextPrefix + sessionKey
	b, err := json.Marshal(chat)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionKey string) error {
	key := aiContextPrefix + sessionKey
	return s.client.Del(ctx, key).Err()
}

type memoryEntry struct {
	chat    models.ChatContext
	expires time.Time
}

// MemoryContextStore is the in-process ContextStore. Entries expire ttl after their last write.
type MemoryContextStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryContextStore(ttl time.Duration) *MemoryContextStore {
	return &MemoryContextStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (s *MemoryContextStore) Get(_ context.Context, sessionKey string) (*models.ChatContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionKey]
	if !ok {
		return &models.ChatContext{}, nil
	}
	if s.ttl > 0 && !s.now().Before(e.expires) {
		delete(s.entries, sessionKey)
		return &models.ChatContext{}, nil
	}
	msgs := append([]models.ChatMessage(nil), e.chat.Messages...)
	return &models.ChatContext{Messages: msgs}, nil
}

func (s *MemoryContextStore) Set(_ context.Context, sessionKey string, chat *models.ChatContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := append([]models.ChatMessage(nil), chat.Messages...)
	s.entries[sessionKey] = memoryEntry{
		chat:    models.ChatContext{Messages: msgs},
		expires: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, sessionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionKey)
	return nil
}
