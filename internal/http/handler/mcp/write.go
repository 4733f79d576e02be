package mcp

import (
	"context"
	"fmt"

	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"

	httpCtx "github.com/bornholm/roster/internal/http/context"
)

func (h *Handler) handleAssignPerson(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	asLead := request.GetBool("as_lead", false)

	task, err := h.planner.AssignPerson(ctx, model.TaskID(taskID), name, asLead, h.coordinator(ctx, request))

	return h.mutationResult(model.TaskID(taskID), task, err)
}

func (h *Handler) handleRemovePerson(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task, err := h.planner.RemovePerson(ctx, model.TaskID(taskID), name, h.coordinator(ctx, request))

	return h.mutationResult(model.TaskID(taskID), task, err)
}

func (h *Handler) handleAddSlot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task, err := h.planner.AddSlot(ctx, model.TaskID(taskID), h.coordinator(ctx, request))

	return h.mutationResult(model.TaskID(taskID), task, err)
}

// mutationResult reports rejected mutations back to the model as tool
// errors so it can correct the request. Store failures stay protocol errors.
func (h *Handler) mutationResult(taskID model.TaskID, task model.Task, err error) (*mcp.CallToolResult, error) {
	if err == nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{formatTask(task)},
		}, nil
	}

	var engineErr *assignment.Error

	switch {
	case errors.As(err, &engineErr):
		return mcp.NewToolResultError(engineErr.UserMessage()), nil
	case errors.Is(err, port.ErrNotFound):
		return mcp.NewToolResultError("The task does not exist."), nil
	case errors.Is(err, port.ErrConflict):
		return mcp.NewToolResultError(fmt.Sprintf("Task '%s' was modified concurrently, read it again before retrying.", taskID)), nil
	default:
		return nil, errors.WithStack(err)
	}
}

func (h *Handler) coordinator(ctx context.Context, request mcp.CallToolRequest) string {
	if coordinator := request.GetString("coordinator", ""); coordinator != "" {
		return coordinator
	}

	if account := httpCtx.User(ctx); account != nil && account.Username != "" {
		return account.Username
	}

	return h.defaultActor
}
