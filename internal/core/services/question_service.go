package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
	"github.com/vncsmyrnk/polls/internal/core/validation"
)

type questionService struct {
	questions ports.QuestionRepository
	choices   ports.ChoiceRepository
	validator *validation.Validator
	log       logrus.FieldLogger
}

func NewQuestionService(questions ports.QuestionRepository, choices ports.ChoiceRepository, log logrus.FieldLogger) ports.QuestionService {
	return &questionService{
		questions: questions,
		choices:   choices,
		validator: validation.New(),
		log:       log,
	}
}

func (s *questionService) ListVisibleQuestions(ctx context.Context, now time.Time) ([]*domain.Question, error) {
	candidates, err := s.questions.List(ctx, domain.VisibleFilter(now, domain.LatestQuestionsLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	// The store is trusted to order and limit, never to widen visibility.
	questions := make([]*domain.Question, 0, len(candidates))
	for _, q := range candidates {
		if domain.IsVisible(q, now) {
			questions = append(questions, q)
		}
	}
	if len(questions) > domain.LatestQuestionsLimit {
		questions = questions[:domain.LatestQuestionsLimit]
	}

	return questions, nil
}

func (s *questionService) GetVisibleQuestion(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Question, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.IsVisible(q, now) {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return s.questions.GetByID(ctx, id)
}

func (s *questionService) GetChoiceFor(ctx context.Context, questionID, choiceID uuid.UUID) (*domain.Choice, error) {
	return s.choices.GetForQuestion(ctx, questionID, choiceID)
}

func (s *questionService) CreateQuestion(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	question := &domain.Question{
		ID:      uuid.New(),
		Text:    input.Text,
		PubDate: input.PubDate,
	}
	if err := s.questions.Save(ctx, question); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"question_id": question.ID,
		"pub_date":    question.PubDate,
	}).Info("question created")

	return question, nil
}

func (s *questionService) CreateChoice(ctx context.Context, input ports.CreateChoiceInput) (*domain.Choice, error) {
	if input.Color == "" {
		input.Color = domain.DefaultChoiceColor
	}
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	choice := &domain.Choice{
		ID:         uuid.New(),
		QuestionID: input.QuestionID,
		Text:       input.Text,
		Color:      input.Color,
	}
	if err := s.choices.Save(ctx, choice); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"question_id": choice.QuestionID,
		"choice_id":   choice.ID,
	}).Info("choice created")

	return choice, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithField("question_id", id).Info("question deleted")
	return nil
}
