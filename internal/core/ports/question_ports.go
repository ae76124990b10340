package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
)

type QuestionRepository interface {
	Save(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChoiceRepository interface {
	Save(ctx context.Context, choice *domain.Choice) error
	GetForQuestion(ctx context.Context, questionID, choiceID uuid.UUID) (*domain.Choice, error)
	IncrementVotes(ctx context.Context, questionID, choiceID uuid.UUID) error
}

type CreateQuestionInput struct {
	Text    string    `validate:"required,max=200"`
	PubDate time.Time `validate:"required"`
}

type CreateChoiceInput struct {
	QuestionID uuid.UUID
	Text       string `validate:"required,max=200"`
	Color      string `validate:"hexcolor6"`
}

type QuestionService interface {
	ListVisibleQuestions(ctx context.Context, now time.Time) ([]*domain.Question, error)
	GetVisibleQuestion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetChoiceFor(ctx context.Context, questionID, choiceID uuid.UUID) (*domain.Choice, error)
	CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)
	CreateChoice(ctx context.Context, input CreateChoiceInput) (*domain.Choice, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}
