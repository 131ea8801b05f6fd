package kanban_api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
)

// HealthHandler is the one surface that reveals which store is active.
type HealthHandler struct {
	Selector *kanban_repository.Selector
}

func NewHealthHandler(sel *kanban_repository.Selector) *HealthHandler {
	return &HealthHandler{Selector: sel}
}

func (h *HealthHandler) HealthRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", h.health).Methods("GET")
}

func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"mode":      h.Selector.Mode(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
