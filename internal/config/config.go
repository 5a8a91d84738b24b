// Package config loads the server and client settings from the environment,
// optionally seeded from an env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds the HTTP API settings.
type Server struct {
	AppHost    string        `envconfig:"APP_HOST" default:"localhost"`
	AppPort    string        `envconfig:"APP_PORT" default:"8080"`
	LogLevel   string        `envconfig:"APP_LOG_LEVEL" default:"info"`
	BatchDelay time.Duration `envconfig:"BATCH_DELAY" default:"1s"`

	MEXCBaseURL    string        `envconfig:"MEXC_BASE_URL" default:"https://api.mexc.com"`
	MEXCTimeout    time.Duration `envconfig:"MEXC_TIMEOUT" default:"15s"`
	MEXCRateLimit  float64       `envconfig:"MEXC_RATE_LIMIT" default:"10"`
	MEXCRateBurst  int           `envconfig:"MEXC_RATE_BURST" default:"5"`
	MEXCRecvWindow int64         `envconfig:"MEXC_RECV_WINDOW" default:"5000"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"withdrawals"`
}

// Addr is the listen address of the server.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.AppHost, s.AppPort)
}

// Credential storage backends of the client.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Client holds the command line client settings.
type Client struct {
	APIURL      string        `envconfig:"WITHDRAWAL_API_URL" default:"http://localhost:8080"`
	LogLevel    string        `envconfig:"CLIENT_LOG_LEVEL" default:"warn"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	BatchDelay  time.Duration `envconfig:"BATCH_DELAY" default:"1s"`

	CredentialsBackend string        `envconfig:"CREDENTIALS_BACKEND" default:"file"`
	CredentialsFile    string        `envconfig:"CREDENTIALS_FILE" default:"~/.gw-batch-withdrawal/credentials.json"`
	CredentialsTTL     time.Duration `envconfig:"CREDENTIALS_TTL" default:"0s"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CredentialsPath is CredentialsFile with a leading ~ expanded.
func (c Client) CredentialsPath() (string, error) {
	if c.CredentialsFile != "~" && !strings.HasPrefix(c.CredentialsFile, "~/") {
		return c.CredentialsFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(c.CredentialsFile, "~")), nil
}

// LoadServer reads the server settings. A missing env file is not an error.
func LoadServer(path string) (Server, error) {
	loadEnvFile(path)

	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return Server{}, err
	}
	if cfg.MEXCRateLimit < 0 {
		return Server{}, fmt.Errorf("MEXC_RATE_LIMIT must not be negative, got %v", cfg.MEXCRateLimit)
	}
	return cfg, nil
}

// LoadClient reads the client settings. A missing env file is not an error.
func LoadClient(path string) (Client, error) {
	loadEnvFile(path)

	var cfg Client
	if err := envconfig.Process("", &cfg); err != nil {
		return Client{}, err
	}
	switch cfg.CredentialsBackend {
	case BackendFile, BackendRedis:
	default:
		return Client{}, fmt.Errorf("unknown CREDENTIALS_BACKEND %q", cfg.CredentialsBackend)
	}
	return cfg, nil
}

func loadEnvFile(path string) {
	if path == "" {
		return
	}
	_ = godotenv.Load(path)
}
