package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/Neeraj-Gupta12/PropBot/internal/datasource"
)

// Store owns the current catalog snapshot. Rebuilds load the sources, merge,
// and atomically swap the snapshot; in-flight queries keep reading the
// previous one. A checksum over the raw source data skips rebuilds when
// nothing changed.
type Store struct {
	source datasource.Source

	mu       sync.Mutex // serializes rebuilds
	checksum uint64
	snap     atomic.Pointer[Catalog]
}

// NewStore creates a store backed by the given data source. The store is
// empty until the first Rebuild.
func NewStore(source datasource.Source) *Store {
	s := &Store{source: source}
	empty, _ := Merge(nil, nil, nil)
	s.snap.Store(empty)
	return s
}

// Snapshot returns the current catalog. The returned value is immutable and
// safe to read concurrently.
func (s *Store) Snapshot() *Catalog {
	return s.snap.Load()
}

// Rebuild loads all three sources and swaps in a freshly merged catalog.
// Returns false when the source data is unchanged since the last rebuild.
func (s *Store) Rebuild(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	basics, err := s.source.LoadBasics(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load basics: %w", err)
	}
	characteristics, err := s.source.LoadCharacteristics(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load characteristics: %w", err)
	}
	media, err := s.source.LoadMedia(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load media: %w", err)
	}

	sum, err := checksum(basics, characteristics, media)
	if err != nil {
		return false, err
	}
	if sum == s.checksum && s.checksum != 0 {
		return false, nil
	}

	cat, err := Merge(basics, characteristics, media)
	if err != nil {
		return false, err
	}

	s.snap.Store(cat)
	s.checksum = sum
	return true, nil
}

// checksum hashes the raw source records so unchanged data can be detected
// without re-merging.
func checksum(parts ...interface{}) (uint64, error) {
	h := fnv.New64a()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		if err := enc.Encode(p); err != nil {
			return 0, fmt.Errorf("failed to checksum source data: %w", err)
		}
	}
	return h.Sum64(), nil
}
