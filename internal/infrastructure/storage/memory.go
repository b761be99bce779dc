package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the no-Postgres default: an in-process, process-lifetime
// audit log of solve runs. Runs are lost on restart, which is fine for a
// CLI invocation or a single REST instance with no cross-process history
// requirement.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]*SolveRun
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[uuid.UUID]*SolveRun)}
}

func (s *MemoryStore) SaveRun(ctx context.Context, run *SolveRun) error {
	if run.ID == uuid.Nil {
		return fmt.Errorf("storage: SolveRun.ID must be set")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *run
	s.runs[run.ID] = &cp
	return nil
}

func (s *MemoryStore) GetRun(ctx context.Context, id uuid.UUID) (*SolveRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("storage: run %s not found", id)
	}
	cp := *run
	return &cp, nil
}

// ListRuns returns runs newest CreatedAt first, capped at limit (0 means
// no cap).
func (s *MemoryStore) ListRuns(ctx context.Context, limit int) ([]*SolveRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*SolveRun, 0, len(s.runs))
	for _, run := range s.runs {
		cp := *run
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
