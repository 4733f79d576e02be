package config

type Sentry struct {
	// DSN enables error reporting when set
	DSN         string `env:"DSN,expand"`
	Environment string `env:"ENVIRONMENT,expand" envDefault:"production"`
}
