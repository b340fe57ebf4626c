// Command migrate manages the database schema.
//
// Usage:
//
//	migrate up        apply all pending migrations
//	migrate down      roll back the last migration
//	migrate goto N    migrate up or down to version N
//	migrate version   print the current version
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/pkg/logger"
	"github.com/rs/zerolog"
)

var errUsage = errors.New("usage")

// command is a parsed migrate invocation
type command struct {
	name    string
	version uint
}

// parseCommand validates the arguments before any connection is opened
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}

	switch args[0] {
	case "up", "down", "version":
		return command{name: args[0]}, nil
	case "goto":
		if len(args) < 2 {
			return command{}, errUsage
		}
		version, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return command{}, fmt.Errorf("goto needs a numeric version, got %q", args[1])
		}
		return command{name: "goto", version: uint(version)}, nil
	default:
		return command{}, errUsage
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s up|down|goto N|version\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cmd, err := parseCommand(flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		log := logger.New("news-api-migrate", "info", "json")
		log.Fatal().Err(cfgErr).Msg("Failed to load configuration")
	}
	log := logger.New("news-api-migrate", cfg.Log.Level, cfg.Log.Format)

	if err == nil {
		err = run(cfg, log, cmd)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd.name).Msg("Migration failed")
	}
}

// run executes one command. The connection is closed before it returns, so
// callers may exit on the returned error.
func run(cfg *config.Config, log zerolog.Logger, cmd command) error {
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	switch cmd.name {
	case "up":
		return db.RunMigrations()
	case "down":
		return db.MigrateDown()
	case "goto":
		return db.MigrateToVersion(cmd.version)
	default:
		version, dirty, err := db.MigrationVersion()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	}
}
