// Package memory is an in-process entity store. All reads return copies,
// so callers never alias stored records.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
)

type questionRecord struct {
	question domain.Question
	seq      uint64
	choices  []uuid.UUID
}

type Store struct {
	mu        sync.RWMutex
	seq       uint64
	questions map[uuid.UUID]*questionRecord
	choices   map[uuid.UUID]*domain.Choice
}

func NewStore() *Store {
	return &Store{
		questions: make(map[uuid.UUID]*questionRecord),
		choices:   make(map[uuid.UUID]*domain.Choice),
	}
}

// PingContext always succeeds; it lets the store stand in for a database health check.
func (s *Store) PingContext(ctx context.Context) error {
	return nil
}

// snapshot must be called with s.mu held.
func (s *Store) snapshot(rec *questionRecord) *domain.Question {
	q := rec.question
	q.Choices = make([]domain.Choice, 0, len(rec.choices))
	for _, id := range rec.choices {
		q.Choices = append(q.Choices, *s.choices[id])
	}
	return &q
}

// sorted must be called with s.mu held.
func (s *Store) sorted() []*questionRecord {
	recs := make([]*questionRecord, 0, len(s.questions))
	for _, rec := range s.questions {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.question.PubDate.Equal(b.question.PubDate) {
			return a.question.PubDate.After(b.question.PubDate)
		}
		return a.seq > b.seq
	})
	return recs
}
