package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "sprintwise:session:"

// SessionStore 浏览会话的临时状态；Load 未命中返回 util.ErrSessionNotFound
type SessionStore interface {
	Load(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Clear(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// LoadOrCreate 未命中时返回一个空会话（尚未保存）
func LoadOrCreate(ctx context.Context, store SessionStore, id string) (*model.Session, error) {
	s, err := store.Load(ctx, id)
	if errors.Is(err, util.ErrSessionNotFound) {
		return &model.Session{ID: id}, nil
	}
	return s, err
}

// RedisSessionStore 每次保存刷新 TTL
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *model.Session) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySessionStore 单实例部署使用；按 JSON 存储，读写互不共享指针
type MemorySessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemorySessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if ok && s.expired(entry) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, util.ErrSessionNotFound
	}
	var session model.Session
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *model.Session) error {
	session.UpdatedAt = s.now()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.ID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	s.sweep()
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemorySessionStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemorySessionStore) expired(e memoryEntry) bool {
	return s.ttl > 0 && s.now().After(e.expiresAt)
}

// sweep 调用方持有锁
func (s *MemorySessionStore) sweep() {
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
		}
	}
}
