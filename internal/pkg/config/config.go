package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"  validate:"oneof=trace debug info warn warning error"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// IDPolicy controls what PUT does with a body id that differs from the path id.
	IDPolicy        string        `env:"PUT_ID_POLICY,    default=reassign" validate:"oneof=reassign preserve reject"`
	SwaggerEnabled  bool          `env:"SWAGGER_ENABLED,  default=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s" validate:"gt=0"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER,      default=sqlite" validate:"oneof=sqlite postgres"`
	URL        string `env:"DATABASE_URL"                   validate:"required_if=Driver postgres"`
	SQLitePath string `env:"SQLITE_PATH,    default=records.db" validate:"required_if=Driver sqlite"`
	MaxConns   int32  `env:"DB_MAX_CONNS,   default=10" validate:"gte=0"`
	LogQueries bool   `env:"DB_LOG_QUERIES, default=false"`
}

// Load reads configuration from the environment (and a .env file, when
// present) and validates it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return &cfg, nil
}
