package live

import (
	"netquiz/internal/quiz"
	"netquiz/internal/session"
)

// Begin builds the initial state for a started session.
func Begin(v quiz.Variant, s session.Session, styles quiz.Styles) State {
	state := State{Session: s}
	return showCurrent(state, v, styles)
}

// Submit scores input against the current question. Outside PhaseAsking it
// returns the state unchanged.
func Submit(state State, v quiz.Variant, styles quiz.Styles, input string) (State, error) {
	if state.Phase != PhaseAsking {
		return state, nil
	}
	next, outcome, err := state.Session.Answer(v.Matcher, input)
	if err != nil {
		return state, err
	}
	state.Session = next
	state.Verdict = quiz.NewVerdict(v, outcome, styles)
	state.History = append(append([]HistoryRow(nil), state.History...), HistoryRow{
		QuestionID: outcome.Question.ID,
		Input:      outcome.Input,
		Answer:     outcome.Question.Answer,
		Correct:    outcome.Correct,
	})
	state.Phase = PhaseAnswered
	return state, nil
}

// Advance leaves the verdict screen for the next question or the summary.
func Advance(state State, v quiz.Variant, styles quiz.Styles) State {
	if state.Phase != PhaseAnswered {
		return state
	}
	state.Verdict = quiz.Verdict{}
	return showCurrent(state, v, styles)
}

func showCurrent(state State, v quiz.Variant, styles quiz.Styles) State {
	round, ok := quiz.NewRound(v, state.Session, styles)
	if !ok {
		state.Round = quiz.Round{}
		state.Phase = PhaseDone
		return state
	}
	state.Round = round
	state.Phase = PhaseAsking
	return state
}
