package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type questionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) ports.QuestionRepository {
	return &questionRepository{
		db: db,
	}
}

func (r *questionRepository) Save(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, question.ID, question.Text, question.PubDate)
	if err != nil {
		if isPQError(err, checkViolation) {
			return domain.NewValidationError(domain.FieldError{Field: "text", Message: "This field is required"})
		}
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `
		SELECT id, question_text, pub_date
		FROM questions
		WHERE id = $1
	`

	var q domain.Question
	err := r.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Text, &q.PubDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	choices, err := r.fetchChoices(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	q.Choices = choices

	return &q, nil
}

// List renders the filter as a single query: DISTINCT guards against the
// choice join producing one row per choice.
func (r *questionRepository) List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	var (
		query strings.Builder
		where []string
		args  []interface{}
	)

	query.WriteString(`SELECT DISTINCT q.id, q.question_text, q.pub_date, q.created_at FROM questions q`)
	if filter.HasChoices {
		query.WriteString(` JOIN choices c ON c.question_id = q.id`)
	}
	if filter.PublishedAtOrBefore != nil {
		args = append(args, *filter.PublishedAtOrBefore)
		where = append(where, fmt.Sprintf("q.pub_date <= $%d", len(args)))
	}
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	query.WriteString(` ORDER BY q.pub_date DESC, q.created_at DESC`)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := []*domain.Question{}
	for rows.Next() {
		var (
			q         domain.Question
			createdAt time.Time
		)
		if err := rows.Scan(&q.ID, &q.Text, &q.PubDate, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}
	rows.Close()

	for _, q := range questions {
		choices, err := r.fetchChoices(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		q.Choices = choices
	}

	return questions, nil
}

func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM choices WHERE question_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete choices: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *questionRepository) fetchChoices(ctx context.Context, questionID uuid.UUID) ([]domain.Choice, error) {
	query := `
		SELECT id, question_id, choice_text, choice_color, votes
		FROM choices
		WHERE question_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get choices: %w", err)
	}
	defer rows.Close()

	choices := []domain.Choice{}
	for rows.Next() {
		var c domain.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Color, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating choices: %w", err)
	}
	return choices, nil
}
