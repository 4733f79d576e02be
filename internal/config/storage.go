package config

import "time"

type Storage struct {
	URI   string `env:"URI,expand" envDefault:"sqlite://data.sqlite"`
	Cache Cache  `envPrefix:"CACHE_"`
}

type Cache struct {
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	Size    int           `env:"SIZE" envDefault:"256"`
	TTL     time.Duration `env:"TTL" envDefault:"5s"`
}
