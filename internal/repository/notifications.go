package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tender-board/internal/biddingerrors"

	"github.com/redis/go-redis/v9"
)

// DefaultNotificationKey is the key the notification list lives under.
const DefaultNotificationKey = "notifications"

// MemoryNotificationStore keeps the JSON-encoded notification list in process memory.
type MemoryNotificationStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryNotificationStore creates an empty in-memory notification store
func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{}
}

// LoadNotifications returns the stored list, or an empty list when nothing was saved yet
func (s *MemoryNotificationStore) LoadNotifications(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return decodeNotifications(s.data)
}

// SaveNotifications overwrites the stored list
func (s *MemoryNotificationStore) SaveNotifications(_ context.Context, messages []string) error {
	data, err := encodeNotifications(messages)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// RedisNotificationStore keeps the JSON-encoded notification list under one Redis key.
type RedisNotificationStore struct {
	client *redis.Client
	key    string
}

// NewRedisNotificationStore creates a store bound to key; an empty key uses DefaultNotificationKey
func NewRedisNotificationStore(client *redis.Client, key string) *RedisNotificationStore {
	if key == "" {
		key = DefaultNotificationKey
	}
	return &RedisNotificationStore{client: client, key: key}
}

// LoadNotifications reads the list; a missing key yields an empty list
func (s *RedisNotificationStore) LoadNotifications(ctx context.Context) ([]string, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w: %w", biddingerrors.ErrStore, err)
	}
	return decodeNotifications(data)
}

// SaveNotifications overwrites the list without expiry
func (s *RedisNotificationStore) SaveNotifications(ctx context.Context, messages []string) error {
	data, err := encodeNotifications(messages)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save notifications: %w: %w", biddingerrors.ErrStore, err)
	}
	return nil
}

func encodeNotifications(messages []string) ([]byte, error) {
	if messages == nil {
		messages = []string{}
	}
	data, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("encode notifications: %w", err)
	}
	return data, nil
}

func decodeNotifications(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	if messages == nil {
		messages = []string{}
	}
	return messages, nil
}
