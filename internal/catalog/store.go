package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// Source provides the full list of careers.
type Source interface {
	Load(ctx context.Context) ([]types.Career, error)
	Name() string
}

// FileSource consolidates one or more JSON catalog files.
type FileSource struct {
	Paths []string
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]types.Career, error) {
	careers, _, err := Consolidate(ctx, s.Paths)
	return careers, err
}

// Name implements Source.
func (s *FileSource) Name() string {
	return fmt.Sprintf("files%v", s.Paths)
}

// CareerLister is the slice of the database client used by DBSource.
type CareerLister interface {
	ListCareers(ctx context.Context) ([]types.Career, error)
}

// DBSource reads the catalog from the careers table.
type DBSource struct {
	DB CareerLister
}

// Load implements Source.
func (s *DBSource) Load(ctx context.Context) ([]types.Career, error) {
	return s.DB.ListCareers(ctx)
}

// Name implements Source.
func (s *DBSource) Name() string {
	return "postgres"
}

// Snapshot is an immutable view of the catalog. Callers must not modify Careers.
type Snapshot struct {
	Careers  []types.Career
	Version  string // Content hash, stable across reloads of identical data
	LoadedAt time.Time
	byID     map[string]int
}

// NewSnapshot indexes careers and computes their version.
func NewSnapshot(careers []types.Career) (*Snapshot, error) {
	data, err := json.Marshal(careers)
	if err != nil {
		return nil, fmt.Errorf("failed to hash catalog: %w", err)
	}
	sum := sha256.Sum256(data)

	snap := &Snapshot{
		Careers:  careers,
		Version:  hex.EncodeToString(sum[:8]),
		LoadedAt: time.Now().UTC(),
		byID:     make(map[string]int, len(careers)),
	}
	for i, c := range careers {
		snap.byID[c.CareerID] = i
	}
	return snap, nil
}

// Get returns a career by ID.
func (s *Snapshot) Get(id string) (types.Career, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.Career{}, false
	}
	return s.Careers[i], true
}

// Filter lists careers matching an optional category and level, up to limit (0 = no limit).
func (s *Snapshot) Filter(category vocab.Category, level vocab.ExperienceLevel, limit int) []types.Career {
	out := make([]types.Career, 0)
	for _, c := range s.Careers {
		if category != "" && c.Category != category {
			continue
		}
		if level != "" && c.ExperienceLevel != level {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Store holds the current catalog snapshot. Reloads swap the snapshot atomically; readers
// keep whichever snapshot they already hold.
type Store struct {
	source  Source
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store backed by source.
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Snapshot returns the current snapshot, or nil before the first successful load.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload reads the source and swaps in a new snapshot. On error the previous snapshot stays.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	if s.source == nil {
		return nil, fmt.Errorf("catalog store has no source")
	}
	careers, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", s.source.Name(), err)
	}
	snap, err := NewSnapshot(careers)
	if err != nil {
		return nil, err
	}
	s.current.Store(snap)
	return snap, nil
}

// Set installs careers directly, bypassing the source.
func (s *Store) Set(careers []types.Career) (*Snapshot, error) {
	snap, err := NewSnapshot(careers)
	if err != nil {
		return nil, err
	}
	s.current.Store(snap)
	return snap, nil
}
