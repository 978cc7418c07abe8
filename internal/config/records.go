package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Records struct {
	Path string `env:"MINESWEEPER_RECORDS_DB"`
}

// NewRecords resolves where best times are stored and makes sure the
// parent directory exists.
func NewRecords() (*Records, error) {
	var cfg Records
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse records config: %w", err)
	}
	if cfg.Path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve default records location: %w", err)
		}
		cfg.Path = filepath.Join(configDir, "minesweeper-tui", "records.db")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create records directory: %w", err)
	}
	return &cfg, nil
}
