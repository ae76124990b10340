package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type questionRepository struct {
	store *Store
}

func NewQuestionRepository(store *Store) ports.QuestionRepository {
	return &questionRepository{
		store: store,
	}
}

func (r *questionRepository) Save(ctx context.Context, question *domain.Question) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.questions[question.ID]; exists {
		return fmt.Errorf("failed to insert question: duplicate id %s", question.ID)
	}

	r.store.seq++
	q := *question
	q.Choices = nil
	r.store.questions[q.ID] = &questionRecord{question: q, seq: r.store.seq}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.questions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.store.snapshot(rec), nil
}

func (r *questionRepository) List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	questions := []*domain.Question{}
	for _, rec := range r.store.sorted() {
		q := r.store.snapshot(rec)
		if !filter.Matches(q) {
			continue
		}
		questions = append(questions, q)
		if filter.Limit > 0 && len(questions) == filter.Limit {
			break
		}
	}
	return questions, nil
}

func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.questions[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, choiceID := range rec.choices {
		delete(r.store.choices, choiceID)
	}
	delete(r.store.questions, id)
	return nil
}
