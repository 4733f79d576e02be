package api

import (
	"net/http"

	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/service"
	"github.com/pkg/errors"
)

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	tasks, err := h.planner.ListTasks(ctx, query.Get("q"), getQueryBool(query, "unfilled", false))
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, ListTasksResponse{Tasks: fromTasks(tasks)})
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	task, err := h.planner.GetTask(ctx, taskID)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, TaskResponse{Task: fromTask(task)})
}

// handlePostTask creates a task, or updates one when the body names its id.
func (h *Handler) handlePostTask(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	var probe struct {
		ID model.TaskID `json:"id"`
	}

	if err := decodeBody(data, &probe); err != nil {
		writeError(w, r, err)
		return
	}

	if probe.ID != "" {
		var req UpdateTaskRequest
		if err := decodeBody(data, &req); err != nil {
			writeError(w, r, err)
			return
		}

		h.updateTask(w, r, probe.ID, req)
		return
	}

	var req CreateTaskRequest
	if err := decodeBody(data, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h.createTask(w, r, req)
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h.createTask(w, r, req)
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req UpdateTaskRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h.updateTask(w, r, model.TaskID(r.PathValue("taskID")), req)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request, req CreateTaskRequest) {
	ctx := r.Context()

	for _, field := range []struct{ Name, Value string }{
		{"task", req.Task},
		{"day", req.Day},
		{"section", req.Section},
		{"updatedBy", req.UpdatedBy},
	} {
		if err := requireField(field.Name, field.Value); err != nil {
			writeError(w, r, err)
			return
		}
	}

	task, err := h.planner.CreateTask(ctx, assignment.NewTask{
		Day:         req.Day,
		Time:        req.Time,
		Section:     req.Section,
		Task:        req.Task,
		Lead:        req.Lead,
		LeadOffered: req.LeadOffered,
		Volunteers:  req.Volunteers,
		SlotsNeeded: req.SlotsNeeded,
		Notes:       req.Notes,
	}, req.UpdatedBy)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSONStatus(w, r, http.StatusCreated, TaskResponse{Task: fromTask(task)})
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request, taskID model.TaskID, req UpdateTaskRequest) {
	ctx := r.Context()

	if err := requireField("updatedBy", req.UpdatedBy); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.planner.UpdateTask(ctx, taskID, service.TaskUpdate{
		Lead:            req.Lead,
		Volunteers:      req.Volunteers,
		SlotsNeeded:     req.SlotsNeeded,
		Notes:           req.Notes,
		ExpectedVersion: req.Version,
	}, req.UpdatedBy)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, TaskResponse{Task: fromTask(task)})
}
