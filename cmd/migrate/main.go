// Command migrate applies, rolls back and lists the schema migrations.
//
//	migrate up
//	migrate down [-steps N]
//	migrate status
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jwalitptl/doacao-api/internal/config"
	"github.com/jwalitptl/doacao-api/internal/repository/postgres"
)

func newLogger(level string, pretty bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if pretty {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up | down [-steps N] | status")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch os.Args[1] {
	case "up":
		n, err := postgres.MigrateUp(db)
		if err != nil {
			log.Fatal("Migration failed", zap.Int("applied", n), zap.Error(err))
		}
		log.Info("Migrations applied", zap.Int("applied", n))

	case "down":
		fs := flag.NewFlagSet("down", flag.ExitOnError)
		steps := fs.Int("steps", 1, "migrations to roll back (0 = all)")
		_ = fs.Parse(os.Args[2:])

		n, err := postgres.MigrateDown(db, *steps)
		if err != nil {
			log.Fatal("Rollback failed", zap.Int("rolled_back", n), zap.Error(err))
		}
		log.Info("Migrations rolled back", zap.Int("rolled_back", n))

	case "status":
		statuses, err := postgres.MigrationStatuses(db)
		if err != nil {
			log.Fatal("Failed to read migration status", zap.Error(err))
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%-40s %s\n", s.ID, state)
		}

	default:
		usage()
	}
}
