package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"deltamon/app"
	"deltamon/config"
	"deltamon/debug"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	release, err := app.AcquireInstanceLock()
	if err != nil {
		logger.Error("another instance is already running", "error", err)
		os.Exit(1)
	}
	defer release()

	app.EnsureDesktopEntry(logger)

	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger)
		debug.StartMemLogger(5*time.Second, logger)
	}

	container := app.BuildContainer(cfg, logger, *cfgPath, filepath.Dir(*cfgPath))
	application := app.NewApp("DeltaMon", container)
	application.Start()
}
