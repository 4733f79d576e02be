package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
)

func (h *Handler) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	unfilled := request.GetBool("unfilled", false)

	tasks, err := h.planner.ListTasks(ctx, query, unfilled)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(tasks) == 0 {
		return mcp.NewToolResultText("No task matches the given criteria."), nil
	}

	return &mcp.CallToolResult{
		Content: formatTasks(tasks),
	}, nil
}

func (h *Handler) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.planner.Search(ctx, query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(result.Tasks) == 0 && len(result.People) == 0 {
		return mcp.NewToolResultText("No task or person matches the given query."), nil
	}

	content := make([]mcp.Content, 0, len(result.Tasks)+1)

	if len(result.People) > 0 {
		content = append(content, formatPeople(result.People))
	}

	content = append(content, formatTasks(result.Tasks)...)

	return &mcp.CallToolResult{
		Content: content,
	}, nil
}

func (h *Handler) handleSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := h.planner.Summary(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{formatSummary(summary)},
	}, nil
}
