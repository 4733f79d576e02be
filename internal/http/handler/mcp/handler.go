package mcp

import (
	"net/http"

	"github.com/bornholm/roster/internal/build"
	"github.com/bornholm/roster/internal/core/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Handler struct {
	planner      *service.Planner
	defaultActor string
	handler      http.Handler
	mcp          *server.MCPServer
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

// NewHandler exposes the planner as a set of MCP tools served over the
// streamable HTTP transport. Mutations made without a coordinator argument
// nor an authenticated account are recorded under defaultActor.
func NewHandler(planner *service.Planner, defaultActor string) *Handler {
	h := &Handler{
		planner:      planner,
		defaultActor: defaultActor,
	}

	mcpServer := server.NewMCPServer("roster", build.ProjectVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	mcpServer.AddTool(getListTasksTool(), h.handleListTasks)
	mcpServer.AddTool(getSearchTool(), h.handleSearch)
	mcpServer.AddTool(getSummaryTool(), h.handleSummary)
	mcpServer.AddTool(getAssignPersonTool(), h.handleAssignPerson)
	mcpServer.AddTool(getRemovePersonTool(), h.handleRemovePerson)
	mcpServer.AddTool(getAddSlotTool(), h.handleAddSlot)

	h.mcp = mcpServer

	h.handler = server.NewStreamableHTTPServer(
		mcpServer,
		server.WithStateLess(true),
	)

	return h
}

func getListTasksTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List the volunteer tasks of the event ordered by day and time"),
		mcp.WithString("query",
			mcp.Description("Only list tasks whose name, lead or volunteers contain this text"),
		),
		mcp.WithBoolean("unfilled",
			mcp.Description("Only list tasks with open positions"),
			mcp.DefaultBool(false),
		),
	)
}

func getSearchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Find the tasks and the people matching a name"),
		mcp.WithString("query",
			mcp.Description("Part of a task or person name"),
			mcp.Required(),
		),
	)
}

func getSummaryTool() mcp.Tool {
	return mcp.NewTool("summary",
		mcp.WithDescription("Count the filled and open positions of the event, per day"),
	)
}

func getAssignPersonTool() mcp.Tool {
	return mcp.NewTool("assign_person",
		mcp.WithDescription("Sign a person up for a task, as a volunteer or as the lead"),
		mcp.WithString("task_id", mcp.Description("Identifier of the task"), mcp.Required()),
		mcp.WithString("name", mcp.Description("Name of the person"), mcp.Required()),
		mcp.WithBoolean("as_lead",
			mcp.Description("Assign the person as the lead, replacing any current lead"),
			mcp.DefaultBool(false),
		),
		withCoordinator(),
	)
}

func getRemovePersonTool() mcp.Tool {
	return mcp.NewTool("remove_person",
		mcp.WithDescription("Remove a person from a task, whether lead or volunteer"),
		mcp.WithString("task_id", mcp.Description("Identifier of the task"), mcp.Required()),
		mcp.WithString("name", mcp.Description("Exact name of the person, as listed on the task"), mcp.Required()),
		withCoordinator(),
	)
}

func getAddSlotTool() mcp.Tool {
	return mcp.NewTool("add_slot",
		mcp.WithDescription("Open one more volunteer slot on a task"),
		mcp.WithString("task_id", mcp.Description("Identifier of the task"), mcp.Required()),
		withCoordinator(),
	)
}

func withCoordinator() mcp.ToolOption {
	return mcp.WithString("coordinator",
		mcp.Description("Name recorded as the author of the change"),
	)
}

var _ http.Handler = &Handler{}
