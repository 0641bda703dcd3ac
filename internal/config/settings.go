package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"5000"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF" envDefault:"false"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"digistore24-webhook"`

	// DigistoreAPIKey is read at startup for future use by the event
	// processing logic. The receive path does not consult it.
	DigistoreAPIKey string `env:"DIGISTORE_API_KEY"`
}

// LoadSettings parses Settings from the process environment. If envFile
// exists it is loaded first; a missing file is not an error so the same
// binary runs unchanged in containers that only set real env vars.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}
	settings, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings from environment: %w", err)
	}
	return settings, nil
}
