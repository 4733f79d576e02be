package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/http/handler/api"
	"github.com/pkg/errors"
)

type ListTasksOptions struct {
	Query    string
	Unfilled bool
}

type ListTasksOptionFunc func(opts *ListTasksOptions)

func WithListTasksQuery(query string) ListTasksOptionFunc {
	return func(opts *ListTasksOptions) {
		opts.Query = query
	}
}

func WithListTasksUnfilled(unfilled bool) ListTasksOptionFunc {
	return func(opts *ListTasksOptions) {
		opts.Unfilled = unfilled
	}
}

func (c *Client) ListTasks(ctx context.Context, funcs ...ListTasksOptionFunc) ([]*api.Task, error) {
	opts := &ListTasksOptions{}
	for _, fn := range funcs {
		fn(opts)
	}

	query := url.Values{}
	if opts.Query != "" {
		query.Set("q", opts.Query)
	}
	if opts.Unfilled {
		query.Set("unfilled", strconv.FormatBool(true))
	}

	path := "/tasks"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var res api.ListTasksResponse
	if err := c.jsonRequest(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Tasks, nil
}

func (c *Client) GetTask(ctx context.Context, taskID model.TaskID) (*api.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodGet, taskPath(taskID), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/tasks", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

// UpdateTask sends the full assignment state of a task.
func (c *Client) UpdateTask(ctx context.Context, taskID model.TaskID, req api.UpdateTaskRequest) (*api.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPut, taskPath(taskID), req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) AssignPerson(ctx context.Context, taskID model.TaskID, req api.AssignPersonRequest) (*api.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, taskPath(taskID)+"/assignments", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) RemovePerson(ctx context.Context, taskID model.TaskID, req api.RemovePersonRequest) (*api.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, taskPath(taskID)+"/removals", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) AddSlot(ctx context.Context, taskID model.TaskID, req api.AddSlotRequest) (*api.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, taskPath(taskID)+"/slots", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Task, nil
}

func (c *Client) Search(ctx context.Context, query string) (*api.SearchResponse, error) {
	var res api.SearchResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/search?"+url.Values{"q": {query}}.Encode(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) Schedule(ctx context.Context, funcs ...ListTasksOptionFunc) (*api.ScheduleResponse, error) {
	opts := &ListTasksOptions{}
	for _, fn := range funcs {
		fn(opts)
	}

	query := url.Values{}
	query.Set("q", opts.Query)
	query.Set("unfilled", strconv.FormatBool(opts.Unfilled))

	var res api.ScheduleResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/schedule?"+query.Encode(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) Summary(ctx context.Context) (*api.SummaryResponse, error) {
	var res api.SummaryResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/summary", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func taskPath(taskID model.TaskID) string {
	return fmt.Sprintf("/tasks/%s", url.PathEscape(string(taskID)))
}
