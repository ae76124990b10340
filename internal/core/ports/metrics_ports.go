package ports

// VoteRecorder observes vote outcomes. Implemented by the metrics adapter.
type VoteRecorder interface {
	VoteCast(outcome string)
}
