package domain

import "time"

// LatestQuestionsLimit caps the public question listing.
const LatestQuestionsLimit = 5

// QuestionFilter expresses the store-side query primitives: a pub date
// upper bound, a join on choice existence and a result limit. Results are
// always distinct and ordered by pub date, newest first.
type QuestionFilter struct {
	PublishedAtOrBefore *time.Time
	HasChoices          bool
	Limit               int
}

// IsVisible is the single public visibility rule: the question is not
// scheduled in the future and has at least one choice to vote on.
func IsVisible(q *Question, now time.Time) bool {
	return q != nil && !q.PubDate.After(now) && q.HasChoices()
}

// VisibleFilter renders IsVisible as a store query.
func VisibleFilter(now time.Time, limit int) QuestionFilter {
	return QuestionFilter{
		PublishedAtOrBefore: &now,
		HasChoices:          true,
		Limit:               limit,
	}
}

// Matches applies the filter's predicates (not its limit) to a single question.
func (f QuestionFilter) Matches(q *Question) bool {
	if f.PublishedAtOrBefore != nil && q.PubDate.After(*f.PublishedAtOrBefore) {
		return false
	}
	if f.HasChoices && !q.HasChoices() {
		return false
	}
	return true
}
