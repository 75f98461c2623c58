package live

import (
	"strconv"
	"strings"
)

const inputLimit = 32

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatProgress renders the question counter and running score.
func formatProgress(state State) string {
	total := state.Session.Total()
	answered := state.Session.Index
	number := answered + 1
	if state.Phase != PhaseAsking {
		number = answered
	}
	return "Question " + fmtInt(number) + "/" + fmtInt(total) +
		" | Score: " + fmtInt(state.Session.Score) + "/" + fmtInt(answered)
}

// formatInput truncates an answer for the summary table.
func formatInput(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return "(blank)"
	}
	runes := []rune(normalized)
	if len(runes) <= inputLimit {
		return normalized
	}
	return string(runes[:inputLimit-3]) + "..."
}

// formatResult labels a history row.
func formatResult(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

// hintFor returns the key help line for a phase.
func hintFor(phase Phase) string {
	switch phase {
	case PhaseAsking:
		return "enter: submit • ctrl+c: quit"
	case PhaseAnswered:
		return "enter: continue • ctrl+c: quit"
	default:
		return "enter: exit"
	}
}
