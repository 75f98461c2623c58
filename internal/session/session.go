// Package session tracks one quiz run: which questions were chosen, where the
// player is, and the score.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"netquiz/internal/answer"
	"netquiz/internal/question"
)

var (
	// ErrEmptyBank indicates there is nothing to select from.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrInvalidCount indicates a non-positive question count.
	ErrInvalidCount = errors.New("question count must be positive")
	// ErrNotInProgress indicates an answer outside the InProgress state.
	ErrNotInProgress = errors.New("session is not in progress")
)

// State is the session lifecycle stage.
type State int

const (
	NotStarted State = iota
	InProgress
	Complete
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures question selection.
type Options struct {
	Count    int
	PinnedID *int
}

// Session is a value; every transition returns the next one.
type Session struct {
	ID        string
	Questions []question.Question
	Index     int
	Score     int
	Notice    string
	state     State
}

// Outcome describes one answered question.
type Outcome struct {
	Question question.Question
	Input    string
	Resolved string
	Correct  bool
}

// Result is the final tally.
type Result struct {
	Correct int
	Total   int
}

// Percent returns the score as a percentage of the total.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Start selects questions and moves a NotStarted session to InProgress.
func Start(bank *question.Bank, opts Options, rng *rand.Rand) (Session, error) {
	selection, err := Select(bank, opts, rng)
	if err != nil {
		return Session{}, err
	}
	return Session{
		ID:        uuid.NewString(),
		Questions: selection.Questions,
		Notice:    selection.Notice,
		state:     InProgress,
	}, nil
}

// State returns the lifecycle stage.
func (s Session) State() State {
	return s.state
}

// Total is the number of selected questions.
func (s Session) Total() int {
	return len(s.Questions)
}

// Current returns the question awaiting an answer.
func (s Session) Current() (question.Question, bool) {
	if s.state != InProgress || s.Index >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Answer resolves a letter choice, scores it with matcher and advances.
// Exactly one answer is accepted per question.
func (s Session) Answer(matcher answer.Matcher, input string) (Session, Outcome, error) {
	current, ok := s.Current()
	if !ok {
		return s, Outcome{}, fmt.Errorf("%w (%s)", ErrNotInProgress, s.state)
	}
	resolved := question.ResolveChoice(input, current.Options)
	outcome := Outcome{
		Question: current,
		Input:    input,
		Resolved: resolved,
		Correct:  matcher.Matches(resolved, current.Answer),
	}
	next := s
	if outcome.Correct {
		next.Score++
	}
	next.Index++
	if next.Index >= len(next.Questions) {
		next.state = Complete
	}
	return next, outcome, nil
}

// Result returns the current tally; once Complete it no longer changes.
func (s Session) Result() Result {
	return Result{Correct: s.Score, Total: len(s.Questions)}
}
