package config

type Event struct {
	Days          []string `env:"DAYS" envSeparator:"," envDefault:"Wednesday,Thursday"`
	MasterSection string   `env:"MASTER_SECTION" envDefault:"Buffet Service"`
	ExtrasSection string   `env:"EXTRAS_SECTION" envDefault:"Extras"`
	SeedFile      string   `env:"SEED_FILE,expand"`
	// Actor recorded as updatedBy on tasks written by the server itself
	Actor string `env:"ACTOR" envDefault:"thanksgiving-coordinator"`
}
