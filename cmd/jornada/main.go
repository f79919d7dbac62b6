package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/lmorales/jornada/internal/cli"
	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/config"
	"github.com/lmorales/jornada/internal/db"
	"github.com/lmorales/jornada/internal/repository"
	"github.com/lmorales/jornada/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !cfg.Display.Color || !stdoutIsTerminal() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	now := time.Now()
	tracker, err := service.NewTrackerService(context.Background(), backend, clock.Today(now))
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}

	app := &cli.App{
		Tracker: tracker,
		Config:  cfg,
		Now:     time.Now,
	}

	return cli.NewRootCmd(app).Execute()
}

func loadConfig() (*config.Config, error) {
	probe, err := config.New()
	if err != nil {
		return nil, err
	}

	opts := []config.Option{config.WithViperConfig(probe.System.ConfigPath)}
	if backend := os.Getenv("JORNADA_BACKEND"); backend != "" {
		opts = append(opts, config.WithBackend(backend))
	}

	return config.New(opts...)
}

func openBackend(cfg *config.Config) (repository.Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendBolt:
		backend, err := repository.NewBoltBackend(cfg.BoltPath())
		if err != nil {
			return nil, fmt.Errorf("opening bolt store: %w", err)
		}
		return backend, nil
	default:
		database, err := db.OpenDB(cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteBackend(database), nil
	}
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
