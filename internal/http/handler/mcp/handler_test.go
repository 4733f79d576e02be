package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bornholm/roster/internal/adapter/memory"
	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/core/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
)

func newTestHandler(t *testing.T) (*Handler, model.Task) {
	t.Helper()

	ctx := context.Background()
	planner := service.NewPlanner(memory.NewTaskStore(), service.WithPlannerDays("Wednesday", "Thursday"))

	slots := 1
	task, err := planner.CreateTask(ctx, assignment.NewTask{
		Day:         "Thursday",
		Time:        "10:00 AM",
		Section:     "Kitchen",
		Task:        "Peel potatoes",
		LeadOffered: true,
		SlotsNeeded: &slots,
	}, "test")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return NewHandler(planner, "mcp-test"), task
}

func callTool(t *testing.T, h *Handler, name string, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()

	message, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]any{
			"name":      name,
			"arguments": arguments,
		},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := h.mcp.HandleMessage(context.Background(), message)

	response, ok := res.(mcp.JSONRPCResponse)
	if !ok {
		t.Fatalf("tool '%s': unexpected response %#v", name, res)
	}

	result, ok := response.Result.(mcp.CallToolResult)
	if !ok {
		t.Fatalf("tool '%s': unexpected result %#v", name, response.Result)
	}

	return &result
}

func resultText(result *mcp.CallToolResult) string {
	var sb strings.Builder
	for _, c := range result.Content {
		if text, ok := mcp.AsTextContent(c); ok {
			sb.WriteString(text.Text)
		}
	}

	return sb.String()
}

func TestAssignAndList(t *testing.T) {
	h, task := newTestHandler(t)

	result := callTool(t, h, "assign_person", map[string]any{
		"task_id": string(task.ID),
		"name":    "Ann",
	})
	if result.IsError {
		t.Fatalf("assign_person: unexpected error %s", resultText(result))
	}

	if e, g := true, strings.Contains(resultText(result), "Ann (1/1)"); e != g {
		t.Errorf("assign_person: expected volunteers in %q", resultText(result))
	}

	result = callTool(t, h, "assign_person", map[string]any{
		"task_id": string(task.ID),
		"name":    "Bob",
	})
	if e, g := true, result.IsError; e != g {
		t.Errorf("assign_person on full task: expected tool error, got %q", resultText(result))
	}

	result = callTool(t, h, "list_tasks", map[string]any{"unfilled": true})
	if e, g := true, strings.Contains(resultText(result), "Peel potatoes"); e != g {
		t.Errorf("list_tasks: open lead should keep the task unfilled, got %q", resultText(result))
	}

	result = callTool(t, h, "assign_person", map[string]any{
		"task_id":     string(task.ID),
		"name":        "Carl",
		"as_lead":     true,
		"coordinator": "Dana",
	})
	if result.IsError {
		t.Fatalf("assign_person as lead: unexpected error %s", resultText(result))
	}

	updated, err := h.planner.GetTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Dana", updated.UpdatedBy; e != g {
		t.Errorf("updated.UpdatedBy: expected %q, got %q", e, g)
	}

	result = callTool(t, h, "list_tasks", map[string]any{"unfilled": true})
	if e, g := "No task matches the given criteria.", resultText(result); e != g {
		t.Errorf("list_tasks: expected %q, got %q", e, g)
	}
}

func TestRemoveUnknownPerson(t *testing.T) {
	h, task := newTestHandler(t)

	result := callTool(t, h, "remove_person", map[string]any{
		"task_id": string(task.ID),
		"name":    "Nobody",
	})
	if e, g := true, result.IsError; e != g {
		t.Errorf("remove_person: expected tool error, got %q", resultText(result))
	}

	result = callTool(t, h, "add_slot", map[string]any{"task_id": "unknown"})
	if e, g := "The task does not exist.", resultText(result); e != g {
		t.Errorf("add_slot: expected %q, got %q", e, g)
	}
}

func TestSearchAndSummary(t *testing.T) {
	h, task := newTestHandler(t)

	callTool(t, h, "assign_person", map[string]any{"task_id": string(task.ID), "name": "Ann"})

	result := callTool(t, h, "search", map[string]any{"query": "ann"})
	if e, g := true, strings.Contains(resultText(result), "Ann, volunteer of 'Peel potatoes'"); e != g {
		t.Errorf("search: unexpected content %q", resultText(result))
	}

	result = callTool(t, h, "summary", nil)
	if e, g := true, strings.Contains(resultText(result), "**Event:** 1/2 positions filled (50%)"); e != g {
		t.Errorf("summary: unexpected content %q", resultText(result))
	}
}
