package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// BunStore persists SolveRun audit records to Postgres.
type BunStore struct {
	db *bun.DB
}

func NewBunStore(dsn string) *BunStore {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	return &BunStore{db: db}
}

func (s *BunStore) InitSchema(ctx context.Context) error {
	_, err := s.db.NewCreateTable().Model((*solveRunModel)(nil)).IfNotExists().Exec(ctx)
	return err
}

type solveRunModel struct {
	bun.BaseModel `bun:"table:solve_runs,alias:sr"`

	ID               uuid.UUID `bun:"id,pk"`
	InputFingerprint string    `bun:"input_fingerprint"`
	Backend          string    `bun:"backend"`
	Status           string    `bun:"status"`
	ObjectiveValue   float64   `bun:"objective_value"`
	SolveSeconds     float64   `bun:"solve_seconds"`
	SolutionPayload  []byte    `bun:"solution_payload"`
	CreatedAt        int64     `bun:"created_at"`
}

func newSolveRunModel(run *SolveRun) *solveRunModel {
	return &solveRunModel{
		ID:               run.ID,
		InputFingerprint: run.InputFingerprint,
		Backend:          run.Backend,
		Status:           string(run.Status),
		ObjectiveValue:   run.ObjectiveValue,
		SolveSeconds:     run.SolveSeconds,
		SolutionPayload:  run.SolutionPayload,
		CreatedAt:        run.CreatedAt.UnixNano(),
	}
}

func (m *solveRunModel) toDomain() *SolveRun {
	return &SolveRun{
		ID:               m.ID,
		InputFingerprint: m.InputFingerprint,
		Backend:          m.Backend,
		Status:           solveStatusOf(m.Status),
		ObjectiveValue:   m.ObjectiveValue,
		SolveSeconds:     m.SolveSeconds,
		SolutionPayload:  m.SolutionPayload,
		CreatedAt:        timeFromUnixNano(m.CreatedAt),
	}
}

func (s *BunStore) SaveRun(ctx context.Context, run *SolveRun) error {
	model := newSolveRunModel(run)
	_, err := s.db.NewInsert().Model(model).On("CONFLICT (id) DO UPDATE").Exec(ctx)
	return err
}

func (s *BunStore) GetRun(ctx context.Context, id uuid.UUID) (*SolveRun, error) {
	model := new(solveRunModel)
	err := s.db.NewSelect().Model(model).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: get run %s: %w", id, err)
	}
	return model.toDomain(), nil
}

func (s *BunStore) ListRuns(ctx context.Context, limit int) ([]*SolveRun, error) {
	var models []solveRunModel
	query := s.db.NewSelect().Model(&models).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]*SolveRun, len(models))
	for i := range models {
		out[i] = models[i].toDomain()
	}
	return out, nil
}

func (s *BunStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *BunStore) Close() error {
	return s.db.Close()
}
