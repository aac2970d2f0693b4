package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server    ServerConfig
	TLS       TLSConfig
	Transport TransportConfig
	Shortener ShortenerConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	Database  DatabaseConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	BodyLimit      string `env:"SERVER_BODY_LIMIT" envDefault:"64K"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type TransportConfig struct {
	Timeout             time.Duration `env:"TRANSPORT_TIMEOUT" envDefault:"10s"`
	UserAgent           string        `env:"TRANSPORT_USER_AGENT" envDefault:"unishort/1.0"`
	MaxBodyBytes        int64         `env:"TRANSPORT_MAX_BODY_BYTES" envDefault:"1048576"`
	MaxIdleConns        int           `env:"TRANSPORT_MAX_IDLE_CONNS" envDefault:"64"`
	MaxIdleConnsPerHost int           `env:"TRANSPORT_MAX_IDLE_CONNS_PER_HOST" envDefault:"4"`
}

type ShortenerConfig struct {
	// Providers overrides the fallback order. Empty means the built-in ranking.
	Providers []string `env:"SHORTENER_PROVIDERS" envSeparator:","`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"4096"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"256"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"unishort"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"4"`
}

type LogConfig struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
