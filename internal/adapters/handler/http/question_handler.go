package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type QuestionHandler struct {
	service ports.QuestionService
	now     func() time.Time
	log     logrus.FieldLogger
}

func NewQuestionHandler(service ports.QuestionService, now func() time.Time, log logrus.FieldLogger) *QuestionHandler {
	if now == nil {
		now = time.Now
	}
	return &QuestionHandler{
		service: service,
		now:     now,
		log:     log,
	}
}

type questionResponse struct {
	*domain.Question
	WasPublishedRecently bool `json:"was_published_recently"`
}

func newQuestionResponse(q *domain.Question, now time.Time) questionResponse {
	return questionResponse{Question: q, WasPublishedRecently: q.WasPublishedRecently(now)}
}

func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	questions, err := h.service.ListVisibleQuestions(r.Context(), now)
	if err != nil {
		h.log.WithError(err).Error("failed to list questions")
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, newQuestionResponse(q, now))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	q, ok := h.visibleQuestion(w, r, now)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newQuestionResponse(q, now))
}

func (h *QuestionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	q, ok := h.visibleQuestion(w, r, h.now())
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, domain.Tally(q))
}

// visibleQuestion writes a 404 for malformed, absent and hidden ids alike.
func (h *QuestionHandler) visibleQuestion(w http.ResponseWriter, r *http.Request, now time.Time) (*domain.Question, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrNotFound.Error(), http.StatusNotFound)
		return nil, false
	}

	q, err := h.service.GetVisibleQuestion(r.Context(), id, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, domain.ErrNotFound.Error(), http.StatusNotFound)
			return nil, false
		}
		h.log.WithError(err).WithField("question_id", id).Error("failed to get question")
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return q, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
