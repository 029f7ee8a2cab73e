package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"contactbook/pkg/config"
	"contactbook/pkg/logger"
	"contactbook/postgres"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration")
	dir := flag.String("dir", "migrations", "directory holding the migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatalw("migrations only apply to postgres", "driver", cfg.DB.Driver)
	}

	opts := postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	}
	db, err := sql.Open("postgres", opts.DSN())
	if err != nil {
		log.Fatalw("cannot connect to db", "error", err)
	}
	defer db.Close()

	migrations := &migrate.FileMigrationSource{
		Dir: *dir,
	}

	direction, limit := migrate.Up, 0
	if *down {
		direction, limit = migrate.Down, 1
	}

	total, err := migrate.ExecMax(db, "postgres", migrations, direction, limit)
	if err != nil {
		log.Fatalw("cannot execute migration", "error", err)
	}

	log.Infow("applied migrations", "total", total, "down", *down)
}
