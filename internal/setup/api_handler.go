package setup

import (
	"context"

	"github.com/bornholm/roster/internal/config"
	"github.com/bornholm/roster/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	planner, err := getPlannerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler := api.NewHandler(planner)

	return handler, nil
}
