package api

import (
	"net/http"

	"github.com/bornholm/roster/internal/core/service"
)

type Handler struct {
	planner *service.Planner
	mux     *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(planner *service.Planner) *Handler {
	h := &Handler{
		planner: planner,
		mux:     &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /tasks", h.handleListTasks)
	h.mux.HandleFunc("POST /tasks", h.handlePostTask)
	h.mux.HandleFunc("PUT /tasks", h.handleCreateTask)
	h.mux.HandleFunc("GET /tasks/{taskID}", h.handleGetTask)
	h.mux.HandleFunc("PUT /tasks/{taskID}", h.handleUpdateTask)
	h.mux.HandleFunc("POST /tasks/{taskID}/assignments", h.handleAssignPerson)
	h.mux.HandleFunc("POST /tasks/{taskID}/removals", h.handleRemovePerson)
	h.mux.HandleFunc("POST /tasks/{taskID}/slots", h.handleAddSlot)

	h.mux.HandleFunc("GET /search", h.handleSearch)
	h.mux.HandleFunc("GET /schedule", h.handleSchedule)
	h.mux.HandleFunc("GET /summary", h.handleSummary)

	return h
}

var _ http.Handler = &Handler{}
