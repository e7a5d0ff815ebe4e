package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Recommendations stores recommendation sets as JSON in a Cache.
type Recommendations struct {
	backend Cache
	ttl     time.Duration
}

// NewRecommendations wraps backend. A zero ttl uses the backend default.
func NewRecommendations(backend Cache, ttl time.Duration) *Recommendations {
	return &Recommendations{backend: backend, ttl: ttl}
}

// Key fingerprints the normalized profile, the engine options and the catalog version.
func (r *Recommendations) Key(profile types.UserProfile, options any, catalogVersion string) (string, error) {
	fp, err := Fingerprint(profile, options, catalogVersion)
	if err != nil {
		return "", err
	}
	return "rec:" + fp, nil
}

// Lookup returns the cached set for key. A miss returns nil with a nil error.
func (r *Recommendations) Lookup(ctx context.Context, key string) (*types.RecommendationSet, error) {
	raw, err := r.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached recommendations: %w", err)
	}
	var set types.RecommendationSet
	if err := json.Unmarshal(raw, &set); err != nil {
		// A corrupt entry is treated as a miss and evicted.
		_ = r.backend.Delete(ctx, key)
		return nil, nil
	}
	return &set, nil
}

// Store caches set under key.
func (r *Recommendations) Store(ctx context.Context, key string, set *types.RecommendationSet) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}
	if err := r.backend.Set(ctx, key, raw, r.ttl); err != nil {
		return fmt.Errorf("failed to cache recommendations: %w", err)
	}
	return nil
}
