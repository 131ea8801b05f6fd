package kanban_api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
	"github.com/Yvelin-officiel/Quanban/internal/services/kanban_services"
)

// newTestRouter wires the full route surface over a fresh in-memory store,
// the same shape cmd/main.go builds in fallback mode.
func newTestRouter(store *kanban_repository.MemoryStore) *mux.Router {
	selector := kanban_repository.NewFallbackSelector(store)

	r := mux.NewRouter()
	NewBoardHandler(kanban_services.NewBoardService(selector)).BoardRoutes(r)
	NewColumnHandler(kanban_services.NewColumnService(selector)).ColumnRoutes(r)
	NewTaskHandler(kanban_services.NewTaskService(selector)).TaskRoutes(r)
	NewHealthHandler(selector).HealthRoutes(r)
	return r
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
