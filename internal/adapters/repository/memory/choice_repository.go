package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type choiceRepository struct {
	store *Store
}

func NewChoiceRepository(store *Store) ports.ChoiceRepository {
	return &choiceRepository{
		store: store,
	}
}

func (r *choiceRepository) Save(ctx context.Context, choice *domain.Choice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.questions[choice.QuestionID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, exists := r.store.choices[choice.ID]; exists {
		return fmt.Errorf("failed to insert choice: duplicate id %s", choice.ID)
	}

	c := *choice
	r.store.choices[c.ID] = &c
	rec.choices = append(rec.choices, c.ID)
	return nil
}

func (r *choiceRepository) GetForQuestion(ctx context.Context, questionID, choiceID uuid.UUID) (*domain.Choice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.choices[choiceID]
	if !ok || c.QuestionID != questionID {
		return nil, domain.ErrNotFound
	}
	choice := *c
	return &choice, nil
}

func (r *choiceRepository) IncrementVotes(ctx context.Context, questionID, choiceID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.choices[choiceID]
	if !ok || c.QuestionID != questionID {
		return domain.ErrNotFound
	}
	c.Votes++
	return nil
}
