package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"future question", now.Add(30 * 24 * time.Hour), false},
		{"one second in the future", now.Add(time.Second), false},
		{"old question", now.Add(-30 * 24 * time.Hour), false},
		{"just over a day old", now.Add(-RecentWindow - time.Second), false},
		{"exactly a day old", now.Add(-RecentWindow), true},
		{"an hour old", now.Add(-time.Hour), true},
		{"published now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{PubDate: tt.pubDate}
			assert.Equal(t, tt.want, q.WasPublishedRecently(now))
		})
	}
}

func TestIsValidHexColor(t *testing.T) {
	tests := map[string]bool{
		"#e3a8f9":   true,
		"#000000":   true,
		"#ABCDEF":   true,
		"#aBc123":   true,
		"#ien566":   false,
		"000000":    false,
		"#fff":      false,
		"#0000000":  false,
		" #000000":  false,
		"#000000\n": false,
		"":          false,
	}

	for in, want := range tests {
		assert.Equal(t, want, IsValidHexColor(in), "input %q", in)
	}
}

func TestChoiceHasValidHexColorFormat(t *testing.T) {
	assert.True(t, (&Choice{Color: "#e3a8f9"}).HasValidHexColorFormat())
	assert.False(t, (&Choice{Color: "#ien566"}).HasValidHexColorFormat())
}

func TestIsVisible(t *testing.T) {
	now := time.Now()
	choice := []Choice{{ID: uuid.New(), Text: "Choice 1."}}

	assert.False(t, IsVisible(nil, now))
	assert.False(t, IsVisible(&Question{PubDate: now.Add(30 * 24 * time.Hour), Choices: choice}, now), "future with choice")
	assert.False(t, IsVisible(&Question{PubDate: now.Add(-30 * 24 * time.Hour)}, now), "past without choice")
	assert.False(t, IsVisible(&Question{PubDate: now.Add(5 * 24 * time.Hour)}, now), "future without choice")
	assert.True(t, IsVisible(&Question{PubDate: now.Add(-30 * 24 * time.Hour), Choices: choice}, now), "past with choice")
	assert.True(t, IsVisible(&Question{PubDate: now, Choices: choice}, now), "published exactly now")
}

func TestVisibleFilterMatchesIsVisible(t *testing.T) {
	now := time.Now()
	f := VisibleFilter(now, LatestQuestionsLimit)
	choice := []Choice{{ID: uuid.New()}}

	questions := []*Question{
		{PubDate: now.Add(-time.Hour), Choices: choice},
		{PubDate: now.Add(-time.Hour)},
		{PubDate: now.Add(time.Hour), Choices: choice},
		{PubDate: now, Choices: choice},
	}
	for _, q := range questions {
		assert.Equal(t, IsVisible(q, now), f.Matches(q))
	}
	assert.Equal(t, LatestQuestionsLimit, f.Limit)
}

func TestQuestionChoice(t *testing.T) {
	id := uuid.New()
	q := &Question{Choices: []Choice{{ID: uuid.New()}, {ID: id, Text: "B"}}}

	c, ok := q.Choice(id)
	assert.True(t, ok)
	assert.Equal(t, "B", c.Text)

	_, ok = q.Choice(uuid.New())
	assert.False(t, ok)
}

func TestTally(t *testing.T) {
	q := &Question{Choices: []Choice{
		{Text: "A", Votes: 2},
		{Text: "B", Votes: 1},
		{Text: "C", Votes: 0},
	}}

	res := Tally(q)
	assert.Equal(t, int64(3), res.TotalVotes)
	assert.Len(t, res.Choices, 3)
	assert.InDelta(t, 66.66, res.Choices[0].Percentage, 0.1)
	assert.InDelta(t, 33.33, res.Choices[1].Percentage, 0.1)
	assert.Equal(t, 0.0, res.Choices[2].Percentage)

	empty := Tally(&Question{Choices: []Choice{{Text: "A"}}})
	assert.Equal(t, int64(0), empty.TotalVotes)
	assert.Equal(t, 0.0, empty.Choices[0].Percentage)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(FieldError{Field: "color", Message: "Hex color is invalid"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "color: Hex color is invalid")
}
