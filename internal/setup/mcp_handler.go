package setup

import (
	"context"

	"github.com/bornholm/roster/internal/config"
	"github.com/bornholm/roster/internal/http/handler/mcp"
	"github.com/pkg/errors"
)

func getMCPHandlerFromConfig(ctx context.Context, conf *config.Config) (*mcp.Handler, error) {
	planner, err := getPlannerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mcp.NewHandler(planner, conf.Event.Actor), nil
}
