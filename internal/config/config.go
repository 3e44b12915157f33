// internal/config/config.go
//
// Runtime settings for the hiring CLI. Values come from HIRING_* environment
// variables, optionally seeded from a .env file; command flags override them.

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDotenvFile is loaded when present in the working directory.
const DefaultDotenvFile = ".env"

// Config holds the hiring CLI settings.
type Config struct {
	OutputPath  string `env:"HIRING_OUTPUT"       envDefault:"output.txt"`
	PresetsFile string `env:"HIRING_PRESETS_FILE" envDefault:"pipelines.yaml"`
	LogLevel    string `env:"HIRING_LOG_LEVEL"    envDefault:"warn"`
	NoColor     bool   `env:"HIRING_NO_COLOR"     envDefault:"false"`
}

// Load reads dotenv files (missing files are skipped) and then parses the
// environment. Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{DefaultDotenvFile}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
