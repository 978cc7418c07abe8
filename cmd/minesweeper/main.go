package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/records"
	"github.com/vancomm/minesweeper-tui/internal/tui"
)

var (
	log = logrus.New()

	width     int
	height    int
	mineCount int
)

func init() {
	const (
		defaultWidth  = 9
		defaultHeight = 9
		defaultMines  = 10
	)
	flag.IntVar(&width, "width", defaultWidth, "board width")
	flag.IntVar(&width, "w", defaultWidth, "board width (shorthand)")
	// no -h shorthand, it would shadow flag's built-in help
	flag.IntVar(&height, "height", defaultHeight, "board height")
	flag.IntVar(&mineCount, "mines", defaultMines, "number of mines")
	flag.IntVar(&mineCount, "m", defaultMines, "number of mines (shorthand)")
}

func setupLogging(cfg *config.Log) error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("bad log level %q: %w", cfg.Level, err)
		}
		logLevel = parsed
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return fmt.Errorf("unable to create log directory: %w", err)
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    5, // MB
		MaxBackups: 2,
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}

	// the TUI owns the terminal, so nothing may print to stderr
	for _, l := range []*logrus.Logger{log, tui.Log} {
		l.SetLevel(logLevel)
		l.SetOutput(io.Discard)
		l.AddHook(hook)
	}
	return nil
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// parseArgs supports `minesweeper WIDTH HEIGHT MINES` in addition to flags.
func parseArgs() error {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		return nil
	}
	if len(args) != 3 {
		return fmt.Errorf("expected WIDTH HEIGHT MINES, got %d arguments", len(args))
	}
	values := make([]int, 3)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("bad argument %q: %w", arg, err)
		}
		values[i] = v
	}
	width, height, mineCount = values[0], values[1], values[2]
	return nil
}

func main() {
	if err := parseArgs(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	logCfg, err := config.NewLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := setupLogging(logCfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	match, err := game.New(width, height, mineCount, createRand())
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad board configuration: %s\n", err)
		os.Exit(2)
	}

	var store *records.Store
	if recordsCfg, err := config.NewRecords(); err != nil {
		log.WithError(err).Warn("best times disabled")
	} else if store, err = records.Open(recordsCfg.Path); err != nil {
		log.WithError(err).Warn("best times disabled")
		store = nil
	} else {
		defer store.Close()
	}

	log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  mineCount,
	}).Info("starting match")

	p := tea.NewProgram(tui.New(match, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program crashed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
