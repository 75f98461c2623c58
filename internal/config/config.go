// Package config resolves quiz settings from defaults, an optional .env file
// and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Settings holds runtime defaults that command-line flags may override.
type Settings struct {
	Questions   int    `env:"NETQUIZ_QUESTIONS" envDefault:"20"`
	PacketsPath string `env:"NETQUIZ_PACKETS" envDefault:"packet_samples.json"`
	UIMode      string `env:"NETQUIZ_UI" envDefault:"auto"`
	NoColor     bool   `env:"NETQUIZ_NO_COLOR"`
	Seed        uint64 `env:"NETQUIZ_SEED"`
	LogLevel    string `env:"NETQUIZ_LOG_LEVEL" envDefault:"warn"`
}

// Load merges the dotenv file (if it exists) under the process environment
// and parses the result.
func Load(dotenvPath string) (Settings, error) {
	environ := map[string]string{}
	if dotenvPath != "" {
		values, err := godotenv.Read(dotenvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("read %s: %w", dotenvPath, err)
		default:
			for key, value := range values {
				environ[key] = value
			}
		}
	}
	for _, pair := range os.Environ() {
		key, value, ok := strings.Cut(pair, "=")
		if ok {
			environ[key] = value
		}
	}
	return Parse(environ)
}

// Parse reads settings from an explicit environment map.
func Parse(environ map[string]string) (Settings, error) {
	var settings Settings
	if err := env.ParseWithOptions(&settings, env.Options{Environment: environ}); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks values that flags can also set.
func (s Settings) Validate() error {
	if s.Questions <= 0 {
		return fmt.Errorf("question count must be positive, got %d", s.Questions)
	}
	switch strings.ToLower(strings.TrimSpace(s.UIMode)) {
	case "", "auto", "live", "plain":
	default:
		return fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", s.UIMode)
	}
	return nil
}
