// Command migrate applies or rolls back the ledger schema.
//
//	migrate -db ./data/ledger.db up
//	migrate -db ./data/ledger.db -steps 1 down
//	migrate -db ./data/ledger.db version
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	"github.com/mmynk/splitledger/pkg/logging"
)

var (
	dbPath   = flag.String("db", "", "Path to the SQLite database (defaults to DB_PATH)")
	steps    = flag.Int("steps", 0, "Number of migrations to roll back with down; 0 means all")
	logLevel = flag.String("log-level", "info", "Log level: debug, info, warn or error")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] up|down|version\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := config.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.SetupWithLevel(level)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *dbPath == "" {
		*dbPath = os.Getenv("DB_PATH")
	}
	if *dbPath == "" {
		*dbPath = config.DefaultDBPath
	}

	if err := run(flag.Arg(0), logger); err != nil {
		logger.Error("Migration failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(command string, logger *slog.Logger) (err error) {
	db, err := sqlite.Open(*dbPath)
	if err != nil {
		return err
	}
	m, err := sqlite.NewMigrator(db)
	if err != nil {
		db.Close()
		return err
	}
	// Closing the migrator also closes db.
	defer func() {
		srcErr, dbErr := m.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No change", "database", *dbPath)
		err = nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Info("No migrations applied", "database", *dbPath)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("Schema version", "database", *dbPath, "version", version, "dirty", dirty)
	return nil
}
