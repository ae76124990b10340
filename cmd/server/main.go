package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/polls/internal/adapters/handler/http"
	"github.com/vncsmyrnk/polls/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/config"
	"github.com/vncsmyrnk/polls/internal/core/ports"
	"github.com/vncsmyrnk/polls/internal/core/services"
	"github.com/vncsmyrnk/polls/internal/logger"
	"github.com/vncsmyrnk/polls/internal/metrics"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log := logger.New("polls", cfg.LogLevel)
	if !envLoaded {
		log.Debug("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		questionRepo ports.QuestionRepository
		choiceRepo   ports.ChoiceRepository
		store        http.Pinger
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		mem := memory.NewStore()
		questionRepo = memory.NewQuestionRepository(mem)
		choiceRepo = memory.NewChoiceRepository(mem)
		store = mem
	default:
		db, err := sql.Open("postgres", cfg.Postgres.ConnString())
		if err != nil {
			log.WithError(err).Fatal("failed to open database")
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.WithError(err).Fatal("failed to reach database")
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			log.WithError(err).Fatal("failed to apply migrations")
		}

		questionRepo = postgres.NewQuestionRepository(db)
		choiceRepo = postgres.NewChoiceRepository(db)
		store = db
	}
	log.WithField("store", cfg.StoreDriver).Info("store ready")

	m := metrics.New()
	questionSvc := services.NewQuestionService(questionRepo, choiceRepo, log)
	voteSvc := services.NewVoteService(questionRepo, choiceRepo, m, log)

	handler := http.NewHandler(
		http.NewQuestionHandler(questionSvc, nil, log),
		http.NewVoteHandler(voteSvc, questionSvc, log),
		store,
		m,
		log,
	)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown failed")
		os.Exit(1)
	}
}
