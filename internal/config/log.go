package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Log struct {
	File  string `env:"MINESWEEPER_LOG_FILE"`
	Level string `env:"MINESWEEPER_LOG_LEVEL" envDefault:"info"`
}

// NewLog resolves the logging configuration. The TUI owns the terminal, so
// logs always go to a file; it defaults to the user cache directory when
// MINESWEEPER_LOG_FILE is not set.
func NewLog() (*Log, error) {
	var cfg Log
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse log config: %w", err)
	}
	if cfg.File == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve default log location: %w", err)
		}
		cfg.File = filepath.Join(cacheDir, "minesweeper-tui", "minesweeper.log")
	}
	return &cfg, nil
}
