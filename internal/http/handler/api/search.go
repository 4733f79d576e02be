package api

import (
	"net/http"

	"github.com/pkg/errors"
)

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.planner.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, fromSearchResult(result))
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	schedule, err := h.planner.Schedule(ctx, query.Get("q"), getQueryBool(query, "unfilled", false))
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, fromSchedule(schedule))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.planner.Summary(ctx)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, fromSummary(summary))
}
