package kanban_api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
	"github.com/Yvelin-officiel/Quanban/internal/services/kanban_services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// handleError maps store and decode failures to status codes. Clients get
// the same shapes whichever backend is active; only the health surface
// reveals the mode.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, kanban_repository.ErrBoardNotFound):
		writeMessage(w, http.StatusNotFound, "Board not found")
	case errors.Is(err, kanban_repository.ErrColumnNotFound):
		writeMessage(w, http.StatusNotFound, "Column not found")
	case errors.Is(err, kanban_repository.ErrTaskNotFound):
		writeMessage(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, context.DeadlineExceeded):
		writeMessage(w, http.StatusGatewayTimeout, "The database took too long to respond")
	default:
		var jsonErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &jsonErr) || errors.As(err, &typeErr) {
			writeMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && strings.HasPrefix(string(pqErr.Code), "28") {
			zap.L().Error("database authentication failed", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Database authentication failed")
			return
		}
		zap.L().Error("request failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(r *http.Request, key string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[key])
	if err != nil {
		return 0, err
	}
	return id, nil
}

type BoardHandler struct {
	Service *kanban_services.BoardService
}

func NewBoardHandler(s *kanban_services.BoardService) *BoardHandler {
	return &BoardHandler{Service: s}
}

func (h *BoardHandler) BoardRoutes(r *mux.Router) {
	r.HandleFunc("/api/boards", h.listBoards).Methods("GET")
	r.HandleFunc("/api/boards", h.createBoard).Methods("POST")
	r.HandleFunc("/api/boards/{id}", h.getBoard).Methods("GET")
	r.HandleFunc("/api/boards/{id}", h.updateBoard).Methods("PUT")
	r.HandleFunc("/api/boards/{id}", h.deleteBoard).Methods("DELETE")
	r.HandleFunc("/api/boards/{id}/details", h.getBoardDetails).Methods("GET")
}

type boardRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (req *boardRequest) validate() string {
	if strings.TrimSpace(req.Title) == "" {
		return "Title is required"
	}
	return ""
}

func (h *BoardHandler) listBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.Service.ListBoards(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

func (h *BoardHandler) getBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid board id")
		return
	}

	board, err := h.Service.GetBoard(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *BoardHandler) getBoardDetails(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid board id")
		return
	}

	details, err := h.Service.GetBoardDetails(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *BoardHandler) createBoard(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if msg := req.validate(); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	board, err := h.Service.CreateBoard(r.Context(), kanban_model.BoardInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, board)
}

func (h *BoardHandler) updateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid board id")
		return
	}

	var req boardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if msg := req.validate(); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	board, err := h.Service.UpdateBoard(r.Context(), id, kanban_model.BoardInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// deleteBoard always answers 204: the cascade removes dependents and a
// missing id is a no-op.
func (h *BoardHandler) deleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid board id")
		return
	}

	if err := h.Service.DeleteBoard(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
