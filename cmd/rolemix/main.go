package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/rolemix/internal/cli"
	"github.com/alexanderramin/rolemix/internal/config"
	"github.com/alexanderramin/rolemix/internal/db"
	"github.com/alexanderramin/rolemix/internal/logging"
	"github.com/alexanderramin/rolemix/internal/repository"
	"github.com/alexanderramin/rolemix/internal/store"
	"github.com/alexanderramin/rolemix/internal/weights"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Local storage: a key/value table in SQLite, or process memory.
	var kv repository.KeyValueStore
	if cfg.Ephemeral {
		kv = repository.NewMemoryKVStore()
	} else {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		kv = repository.NewSQLiteKVStore(database)
	}

	profiles := store.New(
		repository.NewEnvelopePersister(kv, cfg.StorageKey),
		store.WithRand(weights.NewRand(cfg.Seed)),
		store.WithObserver(store.NewLogObserver(logger)),
	)
	if err := profiles.Open(context.Background()); err != nil {
		return err
	}

	app := &cli.App{Store: profiles}

	// Bare "rolemix" on a terminal opens the editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
