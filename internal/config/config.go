package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Wiktionary WiktionaryConfig `yaml:"wiktionary"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is optional at
// load time: commands that persist data check for it themselves, diagnostic
// commands run without a database.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// WiktionaryConfig holds dump retrieval and processing settings.
type WiktionaryConfig struct {
	Locale    string `yaml:"locale"     env:"WIKI_LOCALE"     env-default:"fr"`
	DataDir   string `yaml:"data_dir"   env:"WIKI_DATA_DIR"   env-default:"./data"`
	Workers   int    `yaml:"workers"    env:"WIKI_WORKERS"    env-default:"4"`
	BatchSize int    `yaml:"batch_size" env:"WIKI_BATCH_SIZE" env-default:"1000"`

	// Snapshot forces a specific dump date (YYYYMMDD) instead of the
	// latest available one.
	Snapshot string `yaml:"snapshot" env:"WIKI_DUMP"`

	// DryRun parses the dump without writing to the database.
	DryRun bool `yaml:"dry_run" env:"WIKI_DRY_RUN" env-default:"false"`
}
