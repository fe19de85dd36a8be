package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultHTTPPort = 8080
const defaultChannelID = "InstructionApp"
const defaultLogLevel = "info"
const defaultShutdownTimeout = 15 * time.Second

type Config struct {
	HTTPPort        int
	DatabaseDSN     string
	MigrationsDir   string
	AuthEnabled     bool
	ChannelID       string
	ChannelKey      string
	ChannelKeyHash  string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// UsesDatabase reports whether the instruction journal should go to postgres.
func (c Config) UsesDatabase() bool {
	return c.DatabaseDSN != ""
}

func Load() (Config, error) {
	port, err := envInt("HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return Config{}, err
	}

	authEnabled, err := envBool("AUTH_ENABLED", false)
	if err != nil {
		return Config{}, err
	}

	shutdownSeconds, err := envInt("SHUTDOWN_TIMEOUT_SECONDS", int(defaultShutdownTimeout/time.Second))
	if err != nil {
		return Config{}, err
	}

	channelID := envString("CHANNEL_ID", defaultChannelID)
	channelKey := envString("CHANNEL_KEY", "")
	channelKeyHash := envString("CHANNEL_KEY_HASH", "")
	if authEnabled && channelKey == "" && channelKeyHash == "" {
		return Config{}, fmt.Errorf("AUTH_ENABLED requires CHANNEL_KEY or CHANNEL_KEY_HASH")
	}

	dsn := envString("DATABASE_DSN", "")
	if dsn != "" {
		dsn = normalizeConnectionString(dsn)
	}

	return Config{
		HTTPPort:        port,
		DatabaseDSN:     dsn,
		MigrationsDir:   envString("MIGRATIONS_DIR", filepath.Join("src", "migrations")),
		AuthEnabled:     authEnabled,
		ChannelID:       channelID,
		ChannelKey:      channelKey,
		ChannelKeyHash:  channelKeyHash,
		LogLevel:        envString("LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
	}, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return val, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return val, nil
}

// normalizeConnectionString turns ADO-style "Host=..;Port=.." strings into
// lib/pq keyword form. URLs and keyword strings pass through unchanged.
func normalizeConnectionString(raw string) string {
	if !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
