package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

const noSelectionMessage = "You didn't select a choice."

type VoteHandler struct {
	votes     ports.VoteService
	questions ports.QuestionService
	log       logrus.FieldLogger
}

func NewVoteHandler(votes ports.VoteService, questions ports.QuestionService, log logrus.FieldLogger) *VoteHandler {
	return &VoteHandler{
		votes:     votes,
		questions: questions,
		log:       log,
	}
}

type voteFormResponse struct {
	Question     *domain.Question `json:"question"`
	ErrorMessage string           `json:"error_message"`
}

// Vote reads the "choice" form field. Success redirects to the results
// page; a missing or foreign choice re-renders the question with an error.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	input := ports.VoteInput{QuestionID: questionID}
	if choiceID, err := uuid.Parse(r.PostFormValue("choice")); err == nil {
		input.ChoiceID = &choiceID
	}

	result, err := h.votes.CastVote(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestionNotFound):
			http.Error(w, domain.ErrNotFound.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrNoSelection):
			h.renderNoSelection(w, r, questionID)
		default:
			h.log.WithError(err).WithField("question_id", questionID).Error("failed to cast vote")
			http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/polls/%s/results/", result.QuestionID), http.StatusSeeOther)
}

func (h *VoteHandler) renderNoSelection(w http.ResponseWriter, r *http.Request, questionID uuid.UUID) {
	q, err := h.questions.GetQuestion(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, domain.ErrNotFound.Error(), http.StatusNotFound)
			return
		}
		h.log.WithError(err).WithField("question_id", questionID).Error("failed to reload question")
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, voteFormResponse{Question: q, ErrorMessage: noSelectionMessage})
}
