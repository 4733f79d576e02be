package api

import (
	"net/http"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/pkg/errors"
)

func (h *Handler) handleAssignPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	var req AssignPersonRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := requireField("updatedBy", req.UpdatedBy); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.planner.AssignPerson(ctx, taskID, req.Name, req.AsLead, req.UpdatedBy)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, TaskResponse{Task: fromTask(task)})
}

func (h *Handler) handleRemovePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	var req RemovePersonRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := requireField("updatedBy", req.UpdatedBy); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.planner.RemovePerson(ctx, taskID, req.Name, req.UpdatedBy)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, TaskResponse{Task: fromTask(task)})
}

func (h *Handler) handleAddSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	var req AddSlotRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := requireField("updatedBy", req.UpdatedBy); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.planner.AddSlot(ctx, taskID, req.UpdatedBy)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, TaskResponse{Task: fromTask(task)})
}
