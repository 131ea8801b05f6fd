package kanban_api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
)

func TestCreateBoardRequiresTitle(t *testing.T) {
	store := kanban_repository.NewMemoryStore()
	router := newTestRouter(store)

	for _, body := range []any{
		map[string]any{},
		map[string]any{"title": ""},
		map[string]any{"title": "   "},
	} {
		rec := doRequest(t, router, http.MethodPost, "/api/boards", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	// Nothing was created along the way.
	rec := doRequest(t, router, http.MethodGet, "/api/boards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var boards []kanban_model.Board
	decodeBody(t, rec, &boards)
	require.Empty(t, boards)
}

func TestBoardLifecycle(t *testing.T) {
	router := newTestRouter(kanban_repository.NewMemoryStore())

	rec := doRequest(t, router, http.MethodPost, "/api/boards", map[string]any{"title": "P"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created kanban_model.Board
	decodeBody(t, rec, &created)
	require.Equal(t, 1, created.ID)
	require.Equal(t, "P", created.Title)
	require.Nil(t, created.Description)

	rec = doRequest(t, router, http.MethodGet, "/api/boards/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/api/boards/1", map[string]any{"title": "Renamed", "description": "d"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated kanban_model.Board
	decodeBody(t, rec, &updated)
	require.Equal(t, 1, updated.ID)
	require.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, updated.Description)

	rec = doRequest(t, router, http.MethodPut, "/api/boards/99", map[string]any{"title": "Nope"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/boards/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/boards/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBoardIsIdempotent(t *testing.T) {
	router := newTestRouter(kanban_repository.NewMemoryStore())

	rec := doRequest(t, router, http.MethodDelete, "/api/boards/123", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBoardDetailsScenario(t *testing.T) {
	router := newTestRouter(kanban_repository.NewMemoryStore())

	rec := doRequest(t, router, http.MethodPost, "/api/boards", map[string]any{"title": "P"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var board kanban_model.Board
	decodeBody(t, rec, &board)

	rec = doRequest(t, router, http.MethodPost, "/api/columns", map[string]any{
		"board_id": board.ID, "title": "Todo", "position": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var column kanban_model.Column
	decodeBody(t, rec, &column)

	rec = doRequest(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"column_id": column.ID, "title": "T1", "position": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var task kanban_model.Task
	decodeBody(t, rec, &task)
	require.Equal(t, kanban_model.PriorityMedium, task.Priority)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/boards/%d/details", board.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var details kanban_model.BoardDetails
	decodeBody(t, rec, &details)
	require.Equal(t, board.ID, details.ID)
	require.Len(t, details.Columns, 1)
	require.Equal(t, "Todo", details.Columns[0].Title)
	require.Len(t, details.Columns[0].Tasks, 1)
	require.Equal(t, "T1", details.Columns[0].Tasks[0].Title)
}

func TestDeleteBoardCascadeOverHTTP(t *testing.T) {
	router := newTestRouter(kanban_repository.NewMemoryStore())

	rec := doRequest(t, router, http.MethodPost, "/api/boards", map[string]any{"title": "P"})
	var board kanban_model.Board
	decodeBody(t, rec, &board)

	rec = doRequest(t, router, http.MethodPost, "/api/columns", map[string]any{
		"board_id": board.ID, "title": "Todo", "position": 0,
	})
	var column kanban_model.Column
	decodeBody(t, rec, &column)

	rec = doRequest(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"column_id": column.ID, "title": "T1", "position": 0,
	})
	var task kanban_model.Task
	decodeBody(t, rec, &task)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/boards/%d", board.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/boards/%d/details", board.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBoardsNewestFirst(t *testing.T) {
	store := kanban_repository.NewSeededMemoryStore()
	router := newTestRouter(store)

	rec := doRequest(t, router, http.MethodGet, "/api/boards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var boards []kanban_model.Board
	decodeBody(t, rec, &boards)
	require.Len(t, boards, 2)
	require.True(t, boards[0].CreatedAt.After(boards[1].CreatedAt))
}

func TestInvalidBoardID(t *testing.T) {
	router := newTestRouter(kanban_repository.NewMemoryStore())

	rec := doRequest(t, router, http.MethodGet, "/api/boards/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
