package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/neha01mittal/datadriven-firesafety/app"
	"github.com/neha01mittal/datadriven-firesafety/config"
)

func main() {
	cfgPath := flag.String("config", "firesight.json", "path to the JSON config file")
	provider := flag.String("provider", "", "classification provider: watson, vision, ollama or gemini")
	debugFlag := flag.Bool("debug", false, "verbose logging and runtime stats")
	envFile := flag.String("env", ".env", "optional dotenv file with secrets")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	logger := NewLogger(os.Stdout, cfg.Debug || *debugFlag)
	if err != nil {
		logger.Warn("config load failed", "path", *cfgPath, "error", err)
	}
	if *provider != "" {
		cfg.Provider = *provider
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if err := cfg.LoadSecrets(*envFile); err != nil {
		logger.Warn("secrets load failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	application := app.NewApplication("firesight", cfg, logger)
	if err := application.Start(ctx); err != nil {
		if app.Declined(err) {
			return
		}
		logger.Error("run failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
