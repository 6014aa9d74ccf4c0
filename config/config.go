package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config carries every tunable of the client. All values come from the
// environment (optionally seeded from a .env file) with working defaults, so
// a zero-setup run talks to a local backend.
type Config struct {
	APIBaseURL   string        `env:"UNIHUB_API_URL,       default=http://localhost:8080/api"`
	LoginPath    string        `env:"UNIHUB_LOGIN_PATH,    default=/users/login"`
	RegisterPath string        `env:"UNIHUB_REGISTER_PATH, default=/users/register"`
	HTTPTimeout  time.Duration `env:"UNIHUB_HTTP_TIMEOUT,  default=15s"`
	LogLevel     string        `env:"LOG_LEVEL,            default=info"`
	LogPretty    bool          `env:"LOG_PRETTY,           default=false"`

	Session SessionConfig
	Redis   RedisConfig
}

// SessionConfig selects where the bearer token and last-known user live
// between runs.
type SessionConfig struct {
	// Backend is "file" (per-user directory, the default) or "redis".
	Backend string `env:"UNIHUB_SESSION_BACKEND, default=file"`
	// Dir overrides the file store location. Empty means the OS user config dir.
	Dir string `env:"UNIHUB_SESSION_DIR"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR, default=localhost:6379"`
	DB        int    `env:"REDIS_DB,   default=0"`
	KeyPrefix string `env:"UNIHUB_SESSION_KEY_PREFIX, default=unihub"`
}

// Load reads configuration from the environment using go-envconfig. A .env
// file in the working directory is applied first when present.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
