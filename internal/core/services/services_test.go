package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/polls/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type recorderStub struct {
	outcomes []string
}

func (r *recorderStub) VoteCast(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

type fixture struct {
	questions ports.QuestionService
	votes     ports.VoteService
	recorder  *recorderStub
	now       time.Time
}

func newFixture() *fixture {
	store := memory.NewStore()
	questionRepo := memory.NewQuestionRepository(store)
	choiceRepo := memory.NewChoiceRepository(store)
	log, _ := test.NewNullLogger()
	recorder := &recorderStub{}

	return &fixture{
		questions: NewQuestionService(questionRepo, choiceRepo, log),
		votes:     NewVoteService(questionRepo, choiceRepo, recorder, log),
		recorder:  recorder,
		now:       time.Now(),
	}
}

// createQuestion publishes a question the given number of days offset from
// now (negative for the past, positive for not yet published).
func (f *fixture) createQuestion(t *testing.T, text string, days int) *domain.Question {
	t.Helper()

	q, err := f.questions.CreateQuestion(context.Background(), ports.CreateQuestionInput{
		Text:    text,
		PubDate: f.now.AddDate(0, 0, days),
	})
	require.NoError(t, err)
	return q
}

func (f *fixture) createChoice(t *testing.T, questionID uuid.UUID, text string) *domain.Choice {
	t.Helper()

	c, err := f.questions.CreateChoice(context.Background(), ports.CreateChoiceInput{
		QuestionID: questionID,
		Text:       text,
		Color:      "#e3a8f9",
	})
	require.NoError(t, err)
	return c
}
