package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxTextLength = 200

	// RecentWindow is how far back a pub date still counts as recent.
	RecentWindow = 24 * time.Hour
)

type Question struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Choices []Choice  `json:"choices"`
}

type Choice struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`
	Color      string    `json:"color"`
	Votes      int64     `json:"votes"`
}

func (q *Question) HasChoices() bool {
	return len(q.Choices) > 0
}

// WasPublishedRecently reports whether PubDate lies within [now-RecentWindow, now].
func (q *Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

func (q *Question) Choice(id uuid.UUID) (*Choice, bool) {
	for i := range q.Choices {
		if q.Choices[i].ID == id {
			return &q.Choices[i], true
		}
	}
	return nil, false
}

func (c *Choice) HasValidHexColorFormat() bool {
	return IsValidHexColor(c.Color)
}
