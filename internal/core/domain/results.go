package domain

type ChoiceResult struct {
	Choice     Choice  `json:"choice"`
	Percentage float64 `json:"percentage"`
}

type Results struct {
	Question   *Question      `json:"question"`
	TotalVotes int64          `json:"total_votes"`
	Choices    []ChoiceResult `json:"choices"`
}

// Tally computes each choice's share of the question's votes.
func Tally(q *Question) Results {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}

	res := Results{
		Question:   q,
		TotalVotes: total,
		Choices:    make([]ChoiceResult, 0, len(q.Choices)),
	}
	for _, c := range q.Choices {
		percentage := 0.0
		if total > 0 {
			percentage = (float64(c.Votes) / float64(total)) * 100
		}
		res.Choices = append(res.Choices, ChoiceResult{Choice: c, Percentage: percentage})
	}
	return res
}
