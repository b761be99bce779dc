// Package storage persists an audit trail of solve runs. It is not on
// the Assignment Core's critical path: normalizer → modelbuilder →
// solverdriver → extractor never import it. Callers that want a
// record of what was solved, with what result, wire a Store in front
// of solverdriver.Solve themselves (see internal/infrastructure/api/rest).
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flightops/rostercore/internal/domain"
)

// SolveRun is one audit record: the inputs that were solved, fingerprinted
// rather than stored in full, and the resulting Solution.
type SolveRun struct {
	ID               uuid.UUID
	InputFingerprint string
	Backend          string
	Status           domain.SolveStatus
	ObjectiveValue   float64
	SolveSeconds     float64
	SolutionPayload  []byte
	CreatedAt        time.Time
}

// Store is the persistence contract both MemoryStore and BunStore satisfy.
type Store interface {
	SaveRun(ctx context.Context, run *SolveRun) error
	GetRun(ctx context.Context, id uuid.UUID) (*SolveRun, error)
	ListRuns(ctx context.Context, limit int) ([]*SolveRun, error)
	Ping(ctx context.Context) error
	Close() error
}
