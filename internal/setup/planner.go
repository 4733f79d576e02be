package setup

import (
	"context"

	"github.com/bornholm/roster/internal/config"
	"github.com/bornholm/roster/internal/core/service"
	"github.com/pkg/errors"
)

var getPlannerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Planner, error) {
	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create task store from config")
	}

	planner := service.NewPlanner(store,
		service.WithPlannerDays(conf.Event.Days...),
		service.WithPlannerMasterSection(conf.Event.MasterSection),
		service.WithPlannerExtrasSection(conf.Event.ExtrasSection),
	)

	return planner, nil
})
