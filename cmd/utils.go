package cmd

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"pdf-api/internal/config"
)

// LoadConfig parses the -env flag and loads the config, exiting on error.
func LoadConfig() config.Config {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	return cfg
}

func ConfigureLogging(cfg config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
