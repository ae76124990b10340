package ports

import (
	"context"

	"github.com/google/uuid"
)

type VoteInput struct {
	QuestionID uuid.UUID
	ChoiceID   *uuid.UUID // nil when the form carried no selection
}

type VoteResult struct {
	QuestionID uuid.UUID
	ChoiceID   uuid.UUID
}

type VoteService interface {
	CastVote(ctx context.Context, input VoteInput) (*VoteResult, error)
}
