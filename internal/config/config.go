package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the navigator server configuration, read from the environment.
type Config struct {
	Addr            string        `env:"NAVIGATOR_ADDR" envDefault:":8080"`
	AnalysisTimeout time.Duration `env:"NAVIGATOR_ANALYSIS_TIMEOUT" envDefault:"120s"`
	PDFEnabled      bool          `env:"NAVIGATOR_PDF_ENABLED" envDefault:"true"`
	ChromePath      string        `env:"NAVIGATOR_CHROME_PATH"`
	WebDir          string        `env:"NAVIGATOR_WEB_DIR"`
	OTelEndpoint    string        `env:"NAVIGATOR_OTEL_ENDPOINT"`
	OTelEnabled     bool          `env:"NAVIGATOR_OTEL_ENABLED" envDefault:"true"`
}

// Load reads dotenvPath first when it exists, without overriding variables
// already set, then parses the environment.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AnalysisTimeout <= 0 {
		return Config{}, fmt.Errorf("NAVIGATOR_ANALYSIS_TIMEOUT must be positive, got %s", cfg.AnalysisTimeout)
	}
	return cfg, nil
}
