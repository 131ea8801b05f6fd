package kanban_api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
	"github.com/Yvelin-officiel/Quanban/internal/services/kanban_services"
)

type ColumnHandler struct {
	Service *kanban_services.ColumnService
}

func NewColumnHandler(s *kanban_services.ColumnService) *ColumnHandler {
	return &ColumnHandler{Service: s}
}

func (h *ColumnHandler) ColumnRoutes(r *mux.Router) {
	r.HandleFunc("/api/columns/board/{boardId}", h.listColumnsByBoard).Methods("GET")
	r.HandleFunc("/api/columns", h.createColumn).Methods("POST")
	r.HandleFunc("/api/columns/{id}", h.getColumn).Methods("GET")
	r.HandleFunc("/api/columns/{id}", h.updateColumn).Methods("PUT")
	r.HandleFunc("/api/columns/{id}", h.deleteColumn).Methods("DELETE")
}

// Position is a pointer so that an explicit 0 survives validation; the zero
// position is the leftmost column, not a missing field.
type createColumnRequest struct {
	BoardID  *int   `json:"board_id"`
	Title    string `json:"title"`
	Position *int   `json:"position"`
}

type updateColumnRequest struct {
	Title    string `json:"title"`
	Position *int   `json:"position"`
}

func (h *ColumnHandler) listColumnsByBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := parseID(r, "boardId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid board id")
		return
	}

	columns, err := h.Service.ListColumnsByBoard(r.Context(), boardID)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, columns)
}

func (h *ColumnHandler) getColumn(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid column id")
		return
	}

	column, err := h.Service.GetColumn(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, column)
}

func (h *ColumnHandler) createColumn(w http.ResponseWriter, r *http.Request) {
	var req createColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.BoardID == nil || strings.TrimSpace(req.Title) == "" || req.Position == nil {
		writeMessage(w, http.StatusBadRequest, "board_id, title, and position are required")
		return
	}

	column, err := h.Service.CreateColumn(r.Context(), kanban_model.ColumnInput{
		BoardID:  *req.BoardID,
		Title:    req.Title,
		Position: *req.Position,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, column)
}

func (h *ColumnHandler) updateColumn(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid column id")
		return
	}

	var req updateColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Title) == "" || req.Position == nil {
		writeMessage(w, http.StatusBadRequest, "title and position are required")
		return
	}

	column, err := h.Service.UpdateColumn(r.Context(), id, kanban_model.ColumnInput{
		Title:    req.Title,
		Position: *req.Position,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, column)
}

func (h *ColumnHandler) deleteColumn(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid column id")
		return
	}

	if err := h.Service.DeleteColumn(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
