package common

import (
	"net/url"

	"github.com/bornholm/roster/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramServer      = "server"
	paramCoordinator = "coordinator"
	paramStrict      = "strict"
)

const DefaultCoordinator = "thanksgiving-coordinator"

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		EnvVars: []string{"ROSTER_CLI_SERVER"},
		Value:   "http://localhost:3002",
		Usage:   "Roster server base url",
	})
	flagCoordinator = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramCoordinator,
		EnvVars: []string{"ROSTER_CLI_COORDINATOR"},
		Value:   DefaultCoordinator,
		Usage:   "Name recorded as the author of the changes",
	})
	flagStrict = altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:    paramStrict,
		EnvVars: []string{"ROSTER_CLI_STRICT"},
		Value:   false,
		Usage:   "Reject the change if the task was modified since it was read",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
	}, flags...)
}

// WithWriteFlags adds the flags shared by commands modifying tasks.
func WithWriteFlags(flags ...cli.Flag) []cli.Flag {
	return WithCommonFlags(append([]cli.Flag{
		flagCoordinator,
		flagStrict,
	}, flags...)...)
}

// Before loads the flag values from the configuration file, if any.
func Before(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, NewConfigSourceFromFlagFunc("config"))
}

func GetClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), nil
}

func GetCoordinator(ctx *cli.Context) string {
	return ctx.String(paramCoordinator)
}

func IsStrict(ctx *cli.Context) bool {
	return ctx.Bool(paramStrict)
}
