package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
)

const usageText = `Usage: migrate [flags] [command]

Commands:
  up        apply all pending migrations (default)
  down      roll back migrations (all, or --steps N)
  version   print the current schema version

Flags:`

var errUsage = errors.New("unknown command")

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		switch {
		case errors.Is(err, pflag.ErrHelp):
			return
		case errors.Is(err, errUsage):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logging.Fatal("migrate failed", "error", err)
	}
}

// run returns every failure so the deferred migrator and pool cleanup
// happens before main exits.
func run(args []string, stderr io.Writer) error {
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	steps := fs.IntP("steps", "n", 0, "number of migrations to roll back with down (0 = all)")
	dsn := fs.String("database-url", "", "PostgreSQL connection string (default $DATABASE_URL)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := "up"
	if fs.NArg() > 0 {
		cmd = fs.Arg(0)
	}
	switch cmd {
	case "up", "down", "version":
	default:
		fs.Usage()
		return fmt.Errorf("%w %q", errUsage, cmd)
	}

	if *dsn != "" {
		_ = os.Setenv("DATABASE_URL", *dsn)
	}
	// Migrations always target PostgreSQL, whatever the server's storage driver.
	_ = os.Setenv("STORAGE_DRIVER", config.StoragePostgres)

	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	mg, err := repository.NewMigrator(pool)
	if err != nil {
		return fmt.Errorf("prepare migrator: %w", err)
	}
	defer mg.Close()

	switch cmd {
	case "up":
		err = mg.Up()
	case "down":
		err = mg.Down(*steps)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}

	version, dirty, ok, err := mg.Version()
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	if !ok {
		slog.Info("no migrations applied", "command", cmd)
		return nil
	}
	slog.Info("schema version", "command", cmd, "version", version, "dirty", dirty)
	return nil
}
