package kanban_api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
	"github.com/Yvelin-officiel/Quanban/internal/services/kanban_services"
)

type TaskHandler struct {
	Service *kanban_services.TaskService
}

func NewTaskHandler(s *kanban_services.TaskService) *TaskHandler {
	return &TaskHandler{Service: s}
}

func (h *TaskHandler) TaskRoutes(r *mux.Router) {
	r.HandleFunc("/api/tasks/column/{columnId}", h.listTasksByColumn).Methods("GET")
	r.HandleFunc("/api/tasks/board/{boardId}", h.listTasksByBoard).Methods("GET")
	r.HandleFunc("/api/tasks", h.createTask).Methods("POST")
	r.HandleFunc("/api/tasks/{id}", h.getTask).Methods("GET")
	r.HandleFunc("/api/tasks/{id}", h.updateTask).Methods("PUT")
	r.HandleFunc("/api/tasks/{id}", h.deleteTask).Methods("DELETE")
}

type taskRequest struct {
	ColumnID    *int       `json:"column_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Position    *int       `json:"position"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (req *taskRequest) validate() string {
	if req.ColumnID == nil || strings.TrimSpace(req.Title) == "" || req.Position == nil {
		return "column_id, title, and position are required"
	}
	if req.Priority != "" && !kanban_model.Priority(req.Priority).Valid() {
		return "priority must be one of low, medium, high"
	}
	return ""
}

func (req *taskRequest) input() kanban_model.TaskInput {
	return kanban_model.TaskInput{
		ColumnID:    *req.ColumnID,
		Title:       req.Title,
		Description: req.Description,
		Position:    *req.Position,
		Priority:    kanban_model.Priority(req.Priority),
		DueDate:     req.DueDate,
	}
}

func (h *TaskHandler) listTasksByColumn(w http.ResponseWriter, r *http.Request) {
	columnID, err := parseID(r, "columnId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid column id")
		return
	}

	tasks, err := h.Service.ListTasksByColumn(r.Context(), columnID)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) listTasksByBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := parseID(r, "boardId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid board id")
		return
	}

	tasks, err := h.Service.ListTasksByBoard(r.Context(), boardID)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := h.Service.GetTask(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if msg := req.validate(); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	task, err := h.Service.CreateTask(r.Context(), req.input())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if msg := req.validate(); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	task, err := h.Service.UpdateTask(r.Context(), id, req.input())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := h.Service.DeleteTask(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
