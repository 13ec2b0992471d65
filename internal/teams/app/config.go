package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is populated from the environment. DatabaseURL selects the postgres
// driver when set; otherwise the service runs on the SQLite file.
type Config struct {
	// Identity provider settings. The service verifies, never mints, tokens.
	JWTSecret string `env:"AUTH_JWT_SECRET,required"`
	JWTIssuer string `env:"AUTH_JWT_ISSUER"`

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"teams.db"`
	DatabaseURL  string `env:"DATABASE_URL"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                 int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
