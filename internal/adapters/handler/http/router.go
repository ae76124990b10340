package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/polls/internal/metrics"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func NewHandler(questionHandler *QuestionHandler, voteHandler *VoteHandler, store Pinger, m *metrics.Metrics, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := store.PingContext(r.Context()); err != nil {
			log.WithError(err).Error("health check failed")
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/polls", func(r chi.Router) {
		r.Get("/", questionHandler.ListQuestions)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", questionHandler.GetQuestion)
			r.Get("/results", questionHandler.GetResults)
			r.Post("/vote", voteHandler.Vote)
		})
	})

	return r
}
