package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/infrastructure/auth"
	"github.com/flightops/rostercore/internal/infrastructure/storage"
)

func s1Body() []byte {
	body := map[string]any{
		"skills": []map[string]any{
			{"mechanicId": 1, "regular": map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
			{"mechanicId": 2, "regular": map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
		},
		"schedule": []map[string]any{
			{"baseId": 1, "period": 1, "shift": 1, "aircraft": map[string]int{"aw139": 1}},
		},
		"cost": []map[string]any{
			{"mechanicId": 1, "byLetter": map[string]float64{"A": 10}},
			{"mechanicId": 2, "byLetter": map[string]float64{"A": 20}},
		},
		"options": map[string]any{"solverPreference": []string{"bnb"}},
	}
	b, _ := json.Marshal(body)
	return b
}

func TestHandleSolve_RunsPipelineAndReturnsSolution(t *testing.T) {
	store := storage.NewMemoryStore()
	s := NewServer(auth.NewNoAuth(), store, nil)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(s1Body()))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var sol domain.Solution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sol))
	assert.Equal(t, domain.StatusOptimal, sol.Status)
	assert.Equal(t, 10.0, sol.ObjectiveValue)

	runs, err := store.ListRuns(req.Context(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestHandleSolve_IdempotentReplayHitsCache(t *testing.T) {
	store := storage.NewMemoryStore()
	s := NewServer(auth.NewNoAuth(), store, nil)
	body := s1Body()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// A cached replay returns before the audit row is written, so only
	// the first request is recorded.
	runs, err := store.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestHandleSolve_MalformedBodyIsBadRequest(t *testing.T) {
	s := NewServer(auth.NewNoAuth(), nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolve_SchemaErrorIsBadRequest(t *testing.T) {
	s := NewServer(auth.NewNoAuth(), nil, nil)
	body := map[string]any{
		"skills": []map[string]any{
			{"mechanicId": 1, "regular": map[string]int{}},
			{"mechanicId": 1, "regular": map[string]int{}},
		},
	}
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolve_RequiresAuthWhenConfigured(t *testing.T) {
	jwtAuth := auth.NewJWTAuth("test-secret")
	s := NewServer(jwtAuth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(s1Body()))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := jwtAuth.GenerateToken("test-caller", time.Now().Add(time.Hour))
	require.NoError(t, err)

	req2 := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(s1Body()))
	req2.Header.Set("Authorization", "Bearer "+token)
	rec2 := httptest.NewRecorder()
	s.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusOK, rec2.Code)
}
