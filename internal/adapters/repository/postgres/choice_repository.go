package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type choiceRepository struct {
	db *sql.DB
}

func NewChoiceRepository(db *sql.DB) ports.ChoiceRepository {
	return &choiceRepository{
		db: db,
	}
}

func (r *choiceRepository) Save(ctx context.Context, choice *domain.Choice) error {
	query := `
		INSERT INTO choices (id, question_id, choice_text, choice_color, votes)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, choice.ID, choice.QuestionID, choice.Text, choice.Color, choice.Votes)
	if err != nil {
		if isPQError(err, foreignKeyViolation) {
			return domain.ErrNotFound
		}
		if isPQError(err, checkViolation) {
			return domain.NewValidationError(domain.FieldError{Field: "color", Message: "Hex color is invalid"})
		}
		return fmt.Errorf("failed to insert choice: %w", err)
	}
	return nil
}

func (r *choiceRepository) GetForQuestion(ctx context.Context, questionID, choiceID uuid.UUID) (*domain.Choice, error) {
	query := `
		SELECT id, question_id, choice_text, choice_color, votes
		FROM choices
		WHERE id = $1 AND question_id = $2
	`

	var c domain.Choice
	err := r.db.QueryRowContext(ctx, query, choiceID, questionID).Scan(&c.ID, &c.QuestionID, &c.Text, &c.Color, &c.Votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get choice: %w", err)
	}
	return &c, nil
}

func (r *choiceRepository) IncrementVotes(ctx context.Context, questionID, choiceID uuid.UUID) error {
	query := `UPDATE choices SET votes = votes + 1 WHERE id = $1 AND question_id = $2`
	res, err := r.db.ExecContext(ctx, query, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
