package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/config"
	"github.com/vncsmyrnk/polls/internal/logger"
)

// Usage: migrations [name]
// Without a name every up migration is applied; with one, only the file
// ending in "<name>.sql" runs (e.g. "create_choices.down").
func main() {
	flag.Parse()

	cfg, envLoaded, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logger.New("polls-migrations", cfg.LogLevel)
	if !envLoaded {
		log.Warn("no .env file found")
	}

	db, err := sql.Open("postgres", cfg.Postgres.ConnString())
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if name := flag.Arg(0); name != "" {
		err = postgres.MigrateOne(ctx, db, name)
	} else {
		err = postgres.Migrate(ctx, db)
	}
	if err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	log.Info("migrations executed successfully")
}
