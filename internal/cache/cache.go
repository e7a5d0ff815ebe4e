// Package cache memoizes recommendation sets keyed by a fingerprint of their inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	ErrNotFound   = errors.New("key not found in cache")
	ErrClosed     = errors.New("cache is closed")
	ErrInvalidKey = errors.New("invalid cache key")
)

// Cache stores opaque byte values with a time to live.
type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns ErrNotFound when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error

	Close() error
}

// Options configures a cache backend.
type Options struct {
	DefaultTTL time.Duration

	// MaxEntries bounds the in-process cache.
	MaxEntries int

	RedisAddr string

	RedisPassword string

	RedisDB int

	// KeyPrefix namespaces keys in a shared Redis.
	KeyPrefix string
}

// DefaultOptions returns the defaults used when no TTL or prefix is configured.
func DefaultOptions() Options {
	return Options{
		DefaultTTL: 15 * time.Minute,
		MaxEntries: 10_000,
		KeyPrefix:  "career-compass:",
	}
}

// Fingerprint hashes the JSON encoding of parts into a hex key. Map keys are encoded in
// sorted order, so equal inputs always produce the same fingerprint.
func Fingerprint(parts ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for i, p := range parts {
		if err := enc.Encode(p); err != nil {
			return "", fmt.Errorf("failed to fingerprint part %d: %w", i, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Cache used when Redis is not configured. It holds at most
// MaxEntries values, evicting the least recently used, and no entry outlives DefaultTTL.
type Memory struct {
	mu         sync.RWMutex
	lru        *expirable.LRU[string, memoryEntry]
	defaultTTL time.Duration
	closed     bool
	now        func() time.Time
}

// NewMemory creates an empty in-process cache.
func NewMemory(opts Options) *Memory {
	defaults := DefaultOptions()
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = defaults.DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = defaults.MaxEntries
	}
	return &Memory{
		lru:        expirable.NewLRU[string, memoryEntry](opts.MaxEntries, nil, opts.DefaultTTL),
		defaultTTL: opts.DefaultTTL,
		now:        time.Now,
	}
}

// Set stores value. A ttl of zero or above DefaultTTL is capped at DefaultTTL.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}
	if ttl <= 0 || ttl > m.defaultTTL {
		ttl = m.defaultTTL
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.lru.Add(key, memoryEntry{value: stored, expiresAt: m.now().Add(ttl)})
	return nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	e, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	if !m.now().Before(e.expiresAt) {
		m.lru.Remove(key)
		return nil, ErrNotFound
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	m.lru.Remove(key)
	return nil
}

// Len reports the number of stored entries, including expired ones not yet evicted.
func (m *Memory) Len() int {
	return m.lru.Len()
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.lru.Purge()
	return nil
}
