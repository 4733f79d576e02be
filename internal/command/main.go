package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/roster/internal/build"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Main(name string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			if envFile := ctx.String("env-file"); envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return errors.Wrapf(err, "could not load env file '%s'", envFile)
				}
			}

			logLevel := ctx.String("log-level")
			slogLevel := slog.LevelWarn

			switch logLevel {
			case "debug":
				slogLevel = slog.LevelDebug
			case "info":
				slogLevel = slog.LevelInfo
			case "warn":
				slogLevel = slog.LevelWarn
			case "error":
				slogLevel = slog.LevelError
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level:     slogLevel,
					AddSource: slogLevel == slog.LevelDebug,
				}),
			})

			slog.SetDefault(logger)

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				EnvVars: []string{"ROSTER_CLI_CONFIG"},
				Aliases: []string{"c"},
				Usage:   "configuration file to use",
			},
			&cli.StringFlag{
				Name:    "env-file",
				EnvVars: []string{"ROSTER_CLI_ENV_FILE"},
				Usage:   "dotenv file to load before running the command",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				EnvVars: []string{"ROSTER_CLI_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"ROSTER_CLI_LOG_LEVEL"},
				Usage:   "Set logging level",
				Value:   "warn",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			fmt.Fprintf(os.Stderr, "error: %s\n", userMessage(err))
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

type userFacingError interface {
	UserMessage() string
}

func userMessage(err error) string {
	var userErr userFacingError
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}

	return err.Error()
}
