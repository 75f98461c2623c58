package live

import (
	"netquiz/internal/quiz"
	"netquiz/internal/session"
)

// Phase is the step of the current question the screen is showing.
type Phase int

const (
	PhaseAsking Phase = iota
	PhaseAnswered
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseAnswered:
		return "answered"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// HistoryRow records one answered question for the summary table.
type HistoryRow struct {
	QuestionID int
	Input      string
	Answer     string
	Correct    bool
}

// State captures the live UI state for a quiz run.
type State struct {
	Session session.Session
	Phase   Phase
	Round   quiz.Round
	Verdict quiz.Verdict
	History []HistoryRow
}
