package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const Prefix = "ROSTER_"

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	HTTP    HTTP    `envPrefix:"HTTP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Event   Event   `envPrefix:"EVENT_"`
	Sentry  Sentry  `envPrefix:"SENTRY_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: Prefix,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
