package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// DefaultRoomTTL is how long group trip rooms live before the eviction
// job may drop them. Overridden with the ROOM_TTL env var; "0" disables
// eviction entirely.
const DefaultRoomTTL = 72 * time.Hour

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	RoomTTL      time.Duration
}

// New sets up the global logger and reads the config from the environment
func New() *Config {
	logger, err := setLogger(os.Getenv("LOGGER_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),
		RoomTTL:      roomTTL(),
	}
}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

func roomTTL() time.Duration {
	raw := os.Getenv("ROOM_TTL")
	if raw == "" {
		return DefaultRoomTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		zap.S().Warnf("invalid ROOM_TTL %q, using default of %v, err: %v", raw, DefaultRoomTTL, err)
		return DefaultRoomTTL
	}
	return ttl
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
