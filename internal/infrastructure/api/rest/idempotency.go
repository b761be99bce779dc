package rest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/flightops/rostercore/internal/domain"
)

// idempotencyCache keys a completed Solution by the SHA-256 of the
// request body that produced it. The pipeline is deterministic given
// the same rows and options (spec.md §5), so replaying an identical
// POST /solve body is safe to serve from cache instead of re-solving.
type idempotencyCache struct {
	m *xsync.MapOf[string, *domain.Solution]
}

func newIdempotencyCache() *idempotencyCache {
	return &idempotencyCache{m: xsync.NewMapOf[string, *domain.Solution]()}
}

func fingerprint(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func (c *idempotencyCache) get(key string) (*domain.Solution, bool) {
	return c.m.Load(key)
}

func (c *idempotencyCache) put(key string, sol *domain.Solution) {
	c.m.Store(key, sol)
}
