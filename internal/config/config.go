package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

type Config struct {
	OrderServiceURL        string `env:"ORDER_SERVICE_URL,required=true"`
	NotificationServiceURL string `env:"NOTIFICATION_SERVICE_URL,required=true"`
	JWTSecret              string `env:"JWT_SECRET,required=true"`
	RedisURL               string `env:"REDIS_URL"`
	SessionCookieName      string `env:"SESSION_COOKIE_NAME,default=SESSID"`
	UpstreamTimeoutMillis  int    `env:"UPSTREAM_TIMEOUT_MS,default=10000"`
	DefaultLocale          string `env:"DEFAULT_LOCALE,default=en"`
	APIPort                int    `env:"API_PORT,default=8080"`
	LogLevel               string `env:"LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.UpstreamTimeoutMillis <= 0 {
		return nil, fmt.Errorf("failed to load config: UPSTREAM_TIMEOUT_MS must be positive, got %d", cfg.UpstreamTimeoutMillis)
	}
	return &cfg, nil
}

func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutMillis) * time.Millisecond
}

// SessionAuthEnabled reports whether a redis session store is configured.
func (c *Config) SessionAuthEnabled() bool {
	return c.RedisURL != ""
}
