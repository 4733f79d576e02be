package task

import (
	"fmt"
	"strings"

	"github.com/bornholm/roster/internal/command/common"
	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/internal/http/handler/api"
	"github.com/bornholm/roster/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramLead   = "lead"
	paramAtomic = "atomic"
)

var flagAtomic = &cli.BoolFlag{
	Name:  paramAtomic,
	Usage: "Let the server apply the change on its own copy of the task",
}

func AssignCommand() *cli.Command {
	flags := common.WithWriteFlags(
		&cli.BoolFlag{
			Name:  paramLead,
			Usage: "Assign the person as the task lead, replacing any current lead",
		},
		flagAtomic,
	)

	return &cli.Command{
		Name:      "assign",
		Usage:     "Sign a person up for a task",
		ArgsUsage: "<task-id> <name>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			name := strings.Join(ctx.Args().Tail(), " ")
			asLead := ctx.Bool(paramLead)
			coordinator := common.GetCoordinator(ctx)

			return mutate(ctx,
				func(c *client.Client, taskID model.TaskID) (*api.Task, error) {
					return c.AssignPerson(ctx.Context, taskID, api.AssignPersonRequest{Name: name, AsLead: asLead, UpdatedBy: coordinator})
				},
				func(engine *assignment.Engine, task model.Task) (model.Task, error) {
					return engine.AssignPerson(task, name, asLead, coordinator)
				},
			)
		},
	}
}

func RemoveCommand() *cli.Command {
	flags := common.WithWriteFlags(flagAtomic)

	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove a person from a task",
		ArgsUsage: "<task-id> <name>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			name := strings.Join(ctx.Args().Tail(), " ")
			coordinator := common.GetCoordinator(ctx)

			return mutate(ctx,
				func(c *client.Client, taskID model.TaskID) (*api.Task, error) {
					return c.RemovePerson(ctx.Context, taskID, api.RemovePersonRequest{Name: name, UpdatedBy: coordinator})
				},
				func(engine *assignment.Engine, task model.Task) (model.Task, error) {
					return engine.RemovePerson(task, name, coordinator)
				},
			)
		},
	}
}

func AddSlotCommand() *cli.Command {
	flags := common.WithWriteFlags(flagAtomic)

	return &cli.Command{
		Name:      "add-slot",
		Usage:     "Add a volunteer slot to a task",
		ArgsUsage: "<task-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			coordinator := common.GetCoordinator(ctx)

			return mutate(ctx,
				func(c *client.Client, taskID model.TaskID) (*api.Task, error) {
					return c.AddSlot(ctx.Context, taskID, api.AddSlotRequest{UpdatedBy: coordinator})
				},
				func(engine *assignment.Engine, task model.Task) (model.Task, error) {
					return engine.AddSlot(task, coordinator)
				},
			)
		},
	}
}

func CreateCommand() *cli.Command {
	flags := common.WithWriteFlags(
		&cli.StringFlag{Name: "task", Usage: "Task name", Required: true},
		&cli.StringFlag{Name: "day", Usage: "Event day", Required: true},
		&cli.StringFlag{Name: "time", Usage: "Start time, e.g. '10:00 AM'"},
		&cli.StringFlag{Name: "section", Usage: "Section of the event", Value: "Extras"},
		&cli.StringFlag{Name: paramLead, Usage: "Lead of the task"},
		&cli.BoolFlag{Name: "lead-offered", Usage: "The task offers a lead position"},
		&cli.IntFlag{Name: "slots", Usage: "Number of volunteer slots (defaults to none)"},
		&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
	)

	return &cli.Command{
		Name:   "create",
		Usage:  "Create a new task",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			req := api.CreateTaskRequest{
				Task:        ctx.String("task"),
				Day:         ctx.String("day"),
				Time:        ctx.String("time"),
				Section:     ctx.String("section"),
				LeadOffered: ctx.Bool("lead-offered"),
				Notes:       ctx.String("notes"),
				UpdatedBy:   common.GetCoordinator(ctx),
			}

			if lead := ctx.String(paramLead); lead != "" {
				req.Lead = &lead
			}

			if ctx.IsSet("slots") {
				slots := ctx.Int("slots")
				req.SlotsNeeded = &slots
			}

			task, err := c.CreateTask(ctx.Context, req)
			if err != nil {
				return errors.WithStack(err)
			}

			renderTask(ctx.App.Writer, task)

			return nil
		},
	}
}

type remoteFunc func(c *client.Client, taskID model.TaskID) (*api.Task, error)

type localFunc func(engine *assignment.Engine, task model.Task) (model.Task, error)

// mutate applies a change to a task. By default a fresh snapshot is fetched,
// the change is computed locally and the full resulting state is sent back.
func mutate(ctx *cli.Context, remote remoteFunc, local localFunc) error {
	taskID, err := taskIDArg(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	c, err := common.GetClient(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	if ctx.Bool(paramAtomic) {
		task, err := remote(c, taskID)
		if err != nil {
			return errors.WithStack(err)
		}

		renderTask(ctx.App.Writer, task)

		return nil
	}

	snapshot, err := c.GetTask(ctx.Context, taskID)
	if err != nil {
		return errors.Wrap(err, "could not read task")
	}

	next, err := local(assignment.NewEngine(), snapshot.ToModel())
	if err != nil {
		return errors.WithStack(err)
	}

	req := ReplaceRequest(next, common.GetCoordinator(ctx))
	if common.IsStrict(ctx) {
		version := snapshot.Version
		req.Version = &version
	}

	task, err := c.UpdateTask(ctx.Context, taskID, req)
	if err != nil {
		var clientErr *client.Error
		if errors.As(err, &clientErr) && clientErr.IsConflict() {
			return errors.Wrap(err, fmt.Sprintf("task '%s' was modified since it was read", taskID))
		}

		return errors.WithStack(err)
	}

	renderTask(ctx.App.Writer, task)

	return nil
}

// ReplaceRequest builds the update carrying the full assignment state of
// the task.
func ReplaceRequest(task model.Task, coordinator string) api.UpdateTaskRequest {
	lead := task.LeadName()
	slots := task.SlotsNeeded
	notes := task.Notes

	volunteers := task.Volunteers
	if volunteers == nil {
		volunteers = []string{}
	}

	return api.UpdateTaskRequest{
		Lead:        &lead,
		Volunteers:  volunteers,
		SlotsNeeded: &slots,
		Notes:       &notes,
		UpdatedBy:   coordinator,
	}
}
