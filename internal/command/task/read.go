package task

import (
	"github.com/bornholm/roster/internal/command/common"
	"github.com/bornholm/roster/internal/core/model"
	"github.com/bornholm/roster/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramQuery    = "query"
	paramUnfilled = "unfilled"
)

var (
	flagQuery = &cli.StringFlag{
		Name:    paramQuery,
		Aliases: []string{"q"},
		Usage:   "Only show tasks whose name, lead or volunteers contain the query",
	}
	flagUnfilled = altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:  paramUnfilled,
		Usage: "Only show tasks with open positions",
	})
)

func ListCommand() *cli.Command {
	flags := common.WithCommonFlags(flagQuery, flagUnfilled)

	return &cli.Command{
		Name:   "list",
		Usage:  "List the tasks of the event, sorted by time",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			tasks, err := c.ListTasks(ctx.Context,
				client.WithListTasksQuery(ctx.String(paramQuery)),
				client.WithListTasksUnfilled(ctx.Bool(paramUnfilled)),
			)
			if err != nil {
				return errors.WithStack(err)
			}

			renderTasks(ctx.App.Writer, tasks)

			return nil
		},
	}
}

func UnfilledCommand() *cli.Command {
	flags := common.WithCommonFlags(flagQuery)

	return &cli.Command{
		Name:   "unfilled",
		Usage:  "List the tasks with open positions",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			tasks, err := c.ListTasks(ctx.Context,
				client.WithListTasksQuery(ctx.String(paramQuery)),
				client.WithListTasksUnfilled(true),
			)
			if err != nil {
				return errors.WithStack(err)
			}

			renderTasks(ctx.App.Writer, tasks)

			return nil
		},
	}
}

func ShowCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a task",
		ArgsUsage: "<task-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			taskID, err := taskIDArg(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			task, err := c.GetTask(ctx.Context, taskID)
			if err != nil {
				return errors.WithStack(err)
			}

			renderTask(ctx.App.Writer, task)

			return nil
		},
	}
}

func SearchCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "search",
		Usage:     "Search tasks and people",
		ArgsUsage: "<query>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := c.Search(ctx.Context, ctx.Args().First())
			if err != nil {
				return errors.WithStack(err)
			}

			renderPeople(ctx.App.Writer, res.People)
			renderTasks(ctx.App.Writer, res.Tasks)

			return nil
		},
	}
}

func ScheduleCommand() *cli.Command {
	flags := common.WithCommonFlags(flagQuery, flagUnfilled)

	return &cli.Command{
		Name:   "schedule",
		Usage:  "Show the tasks grouped by day",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			schedule, err := c.Schedule(ctx.Context,
				client.WithListTasksQuery(ctx.String(paramQuery)),
				client.WithListTasksUnfilled(ctx.Bool(paramUnfilled)),
			)
			if err != nil {
				return errors.WithStack(err)
			}

			renderSchedule(ctx.App.Writer, schedule)

			return nil
		},
	}
}

func SummaryCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:   "summary",
		Usage:  "Show how many positions are filled",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			c, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			summary, err := c.Summary(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			renderSummary(ctx.App.Writer, summary)

			return nil
		},
	}
}

func taskIDArg(ctx *cli.Context) (model.TaskID, error) {
	raw := ctx.Args().First()
	if raw == "" {
		return "", errors.New("missing task id argument")
	}

	return model.TaskID(raw), nil
}
