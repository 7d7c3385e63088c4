package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/Cdhernandezr/abchroy-crm/internal/config"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

const usage = `usage: migrate [-dir ./migrations] <command> [args]

commands:
  up                   apply all pending migrations
  up-by-one            apply the next pending migration
  down                 roll back the latest migration
  redo                 roll back and re-apply the latest migration
  status               print the status of every migration
  version              print the current schema version
  create NAME          create a new SQL migration`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Migration error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir := flag.String("dir", "./migrations", "directory with migration files")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}
	command, arguments := args[0], args[1:]
	if command == "create" {
		if len(arguments) == 0 {
			return fmt.Errorf("create requires a migration name")
		}
		arguments = append(arguments[:1], "sql")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, *dir, arguments...); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}
