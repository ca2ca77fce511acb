// Package main applies the provenance graph schema to ClickHouse or PostgreSQL.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
)

type config struct {
	DSN           string `long:"dsn" env:"MIGRATIONS_DSN" default:"clickhouse://localhost:9000/default" description:"database DSN, clickhouse:// or postgres://"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" description:"path to migration files, defaults to migrations/<driver>"`
	Down          bool   `long:"down" env:"MIGRATIONS_DOWN" description:"roll back every migration instead of applying them"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg); err != nil {
		log.Fatalf("migration run failed: %v", err)
	}
}

// databaseURL maps a DSN onto the golang-migrate driver URL and the default migrations directory.
func databaseURL(dsn string) (string, string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", "", fmt.Errorf("parse dsn: %w", err)
	}
	switch u.Scheme {
	case "clickhouse":
		return dsn, "migrations/clickhouse", nil
	case "postgres", "postgresql", "pgx5":
		u.Scheme = "pgx5"
		return u.String(), "migrations/postgres", nil
	default:
		return "", "", fmt.Errorf("unsupported dsn scheme %q", u.Scheme)
	}
}

func runMigrations(ctx context.Context, cfg config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dbURL, defaultDir, err := databaseURL(cfg.DSN)
	if err != nil {
		return err
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = defaultDir
	}

	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(dir))
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("migration source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("migration database close error: %v", dbErr)
		}
	}()

	apply := m.Up
	if cfg.Down {
		apply = m.Down
	}
	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return nil
		}
		return err
	}

	log.Println("migrations applied successfully")
	return nil
}
