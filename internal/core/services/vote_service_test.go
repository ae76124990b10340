package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

func votesByChoice(t *testing.T, f *fixture, questionID uuid.UUID) map[uuid.UUID]int64 {
	t.Helper()

	q, err := f.questions.GetQuestion(context.Background(), questionID)
	require.NoError(t, err)

	votes := make(map[uuid.UUID]int64, len(q.Choices))
	for _, c := range q.Choices {
		votes[c.ID] = c.Votes
	}
	return votes
}

func TestCastVote(t *testing.T) {
	ctx := context.Background()

	t.Run("increments only the selected choice", func(t *testing.T) {
		f := newFixture()
		q := f.createQuestion(t, "Question.", -1)
		a := f.createChoice(t, q.ID, "A")
		b := f.createChoice(t, q.ID, "B")

		result, err := f.votes.CastVote(ctx, ports.VoteInput{QuestionID: q.ID, ChoiceID: &a.ID})
		require.NoError(t, err)
		assert.Equal(t, q.ID, result.QuestionID)
		assert.Equal(t, a.ID, result.ChoiceID)

		votes := votesByChoice(t, f, q.ID)
		assert.Equal(t, int64(1), votes[a.ID])
		assert.Equal(t, int64(0), votes[b.ID])
		assert.Equal(t, []string{VoteOutcomeOK}, f.recorder.outcomes)
	})

	t.Run("missing choice", func(t *testing.T) {
		f := newFixture()
		q := f.createQuestion(t, "Question.", -1)
		a := f.createChoice(t, q.ID, "A")

		result, err := f.votes.CastVote(ctx, ports.VoteInput{QuestionID: q.ID})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNoSelection)
		assert.Equal(t, int64(0), votesByChoice(t, f, q.ID)[a.ID])
		assert.Equal(t, []string{VoteOutcomeNoSelection}, f.recorder.outcomes)
	})

	t.Run("choice of another question", func(t *testing.T) {
		f := newFixture()
		q := f.createQuestion(t, "Question.", -1)
		a := f.createChoice(t, q.ID, "A")
		other := f.createQuestion(t, "Other.", -1)
		foreign := f.createChoice(t, other.ID, "Foreign")

		_, err := f.votes.CastVote(ctx, ports.VoteInput{QuestionID: q.ID, ChoiceID: &foreign.ID})
		assert.ErrorIs(t, err, domain.ErrNoSelection)
		assert.Equal(t, int64(0), votesByChoice(t, f, q.ID)[a.ID])
		assert.Equal(t, int64(0), votesByChoice(t, f, other.ID)[foreign.ID])
	})

	t.Run("unknown choice", func(t *testing.T) {
		f := newFixture()
		q := f.createQuestion(t, "Question.", -1)
		f.createChoice(t, q.ID, "A")
		missing := uuid.New()

		_, err := f.votes.CastVote(ctx, ports.VoteInput{QuestionID: q.ID, ChoiceID: &missing})
		assert.ErrorIs(t, err, domain.ErrNoSelection)
	})

	t.Run("unknown question", func(t *testing.T) {
		f := newFixture()
		choiceID := uuid.New()

		_, err := f.votes.CastVote(ctx, ports.VoteInput{QuestionID: uuid.New(), ChoiceID: &choiceID})
		assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
		assert.Equal(t, []string{VoteOutcomeQuestionNotFound}, f.recorder.outcomes)
	})

	t.Run("repeated votes accumulate", func(t *testing.T) {
		f := newFixture()
		q := f.createQuestion(t, "Question.", -1)
		a := f.createChoice(t, q.ID, "A")

		for i := 0; i < 3; i++ {
			_, err := f.votes.CastVote(ctx, ports.VoteInput{QuestionID: q.ID, ChoiceID: &a.ID})
			require.NoError(t, err)
		}
		assert.Equal(t, int64(3), votesByChoice(t, f, q.ID)[a.ID])
	})
}
