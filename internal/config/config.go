package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           int           `env:"PORT" envDefault:"3000"`
	MaxBodyBytes   int64         `env:"MAX_BODY_BYTES" envDefault:"52428800"` // 50MB
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	TextEngine     string        `env:"PDF_TEXT_ENGINE" envDefault:"fitz"`
	ValidatePDF    bool          `env:"PDF_VALIDATE" envDefault:"false"`
	MaxScale       float64       `env:"MAX_SCALE" envDefault:"10"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the config from the environment, after loading envFile if one is given.
func LoadConfig(envFile string) (Config, error) {
	if envFile == "" {
		log.Printf("no env file specified, using os.Environ only")
	} else {
		log.Printf("loading env from file %s", envFile)
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("error loading .env file '%s': %w", envFile, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	if cfg.MaxScale <= 0 {
		return Config{}, fmt.Errorf("MAX_SCALE must be positive, got %g", cfg.MaxScale)
	}

	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
