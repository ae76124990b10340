package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

const (
	VoteOutcomeOK               = "ok"
	VoteOutcomeNoSelection      = "no_selection"
	VoteOutcomeQuestionNotFound = "question_not_found"
	VoteOutcomeError            = "error"
)

type voteService struct {
	questions ports.QuestionRepository
	choices   ports.ChoiceRepository
	recorder  ports.VoteRecorder
	log       logrus.FieldLogger
}

func NewVoteService(questions ports.QuestionRepository, choices ports.ChoiceRepository, recorder ports.VoteRecorder, log logrus.FieldLogger) ports.VoteService {
	return &voteService{
		questions: questions,
		choices:   choices,
		recorder:  recorder,
		log:       log,
	}
}

// CastVote adds one vote to the selected choice. The increment is a single
// store update; it is not serialized against other votes beyond that.
func (s *voteService) CastVote(ctx context.Context, input ports.VoteInput) (*ports.VoteResult, error) {
	result, err := s.castVote(ctx, input)
	s.recorder.VoteCast(outcome(err))
	return result, err
}

func (s *voteService) castVote(ctx context.Context, input ports.VoteInput) (*ports.VoteResult, error) {
	question, err := s.questions.GetByID(ctx, input.QuestionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}

	if input.ChoiceID == nil {
		return nil, domain.ErrNoSelection
	}
	if _, err := s.choices.GetForQuestion(ctx, question.ID, *input.ChoiceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoSelection
		}
		return nil, err
	}

	if err := s.choices.IncrementVotes(ctx, question.ID, *input.ChoiceID); err != nil {
		// The choice vanished between the lookup and the update.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoSelection
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"question_id": question.ID,
		"choice_id":   *input.ChoiceID,
	}).Debug("vote cast")

	return &ports.VoteResult{QuestionID: question.ID, ChoiceID: *input.ChoiceID}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return VoteOutcomeOK
	case errors.Is(err, domain.ErrNoSelection):
		return VoteOutcomeNoSelection
	case errors.Is(err, domain.ErrQuestionNotFound):
		return VoteOutcomeQuestionNotFound
	default:
		return VoteOutcomeError
	}
}
