package live

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"netquiz/internal/answer"
	"netquiz/internal/packet"
	"netquiz/internal/question"
	"netquiz/internal/quiz"
	"netquiz/internal/session"
	"netquiz/internal/testutil"
)

// TestModelAnswersAndFinishes verifies submit, continue and summary phases.
func TestModelAnswersAndFinishes(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		v, s := flagQuiz(t, 2)
		m := NewModel(v, s, quiz.NewStyles(true))
		if m.State().Phase != PhaseAsking {
			t.Fatalf("expected asking phase, got %s", m.State().Phase)
		}

		m = typeText(m, "syn + ack")
		m = press(m, tea.KeyEnter)
		if m.State().Phase != PhaseAnswered {
			t.Fatalf("expected answered phase, got %s", m.State().Phase)
		}
		if !m.State().Verdict.Correct {
			t.Fatalf("expected SYN+ACK to be accepted")
		}
		if m.Session().Score != 1 {
			t.Fatalf("expected score 1, got %d", m.Session().Score)
		}

		m = press(m, tea.KeyEnter)
		if m.State().Phase != PhaseAsking {
			t.Fatalf("expected second question, got %s", m.State().Phase)
		}
		m = typeText(m, "Z")
		m = press(m, tea.KeyEnter)
		if m.State().Verdict.Correct {
			t.Fatalf("expected Z to be rejected")
		}
		m = press(m, tea.KeyEnter)
		if m.State().Phase != PhaseDone {
			t.Fatalf("expected done phase, got %s", m.State().Phase)
		}
		if len(m.State().History) != 2 {
			t.Fatalf("expected 2 history rows, got %d", len(m.State().History))
		}
		view := m.View()
		if !strings.Contains(view, "Your score: 1/2 (50.0%)") {
			t.Fatalf("expected summary in view, got %q", view)
		}

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("expected quit command on enter after summary")
		}
		if next.(Model).Interrupted() {
			t.Fatalf("finished run must not be interrupted")
		}
	})
}

// TestModelInterrupt verifies ctrl+c before the end marks the run interrupted.
func TestModelInterrupt(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		v, s := flagQuiz(t, 2)
		m := NewModel(v, s, quiz.NewStyles(true))
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if cmd == nil {
			t.Fatalf("expected quit command")
		}
		if !next.(Model).Interrupted() {
			t.Fatalf("expected interrupted model")
		}
		if next.(Model).Session().Index != 0 {
			t.Fatalf("expected no answers recorded")
		}
	})
}

// TestModelViewShowsRound verifies the asking screen lists options.
func TestModelViewShowsRound(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		v, s := flagQuiz(t, 1)
		m := NewModel(v, s, quiz.NewStyles(true))
		view := m.View()
		for _, want := range []string{"TCP Flags Quiz", "Question 1/1 | Score: 0/0", "  A) SYN", "Your answer: "} {
			if !strings.Contains(view, want) {
				t.Fatalf("expected %q in view, got %q", want, view)
			}
		}
	})
}

// TestModelShowsSelectionNotice verifies the pinned-id notice is shown on the first question only.
func TestModelShowsSelectionNotice(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		v, _ := flagQuiz(t, 2)
		missing := 999
		s, err := session.Start(v.Bank, session.Options{Count: 2, PinnedID: &missing}, session.NewRand(5))
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		m := NewModel(v, s, quiz.NewStyles(true))
		notice := "Question ID 999 not found. Starting with random questions."
		if view := m.View(); !strings.Contains(view, notice) {
			t.Fatalf("expected notice in view, got %q", view)
		}
		m = press(m, tea.KeyEnter)
		m = press(m, tea.KeyEnter)
		if m.State().Phase != PhaseAsking {
			t.Fatalf("expected second question, got %s", m.State().Phase)
		}
		if view := m.View(); strings.Contains(view, notice) {
			t.Fatalf("notice must not repeat after the first question, got %q", view)
		}
	})
}

// TestModelShowsPinnedConfirmation verifies a found pin is confirmed.
func TestModelShowsPinnedConfirmation(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		v, s := flagQuiz(t, 1)
		view := NewModel(v, s, quiz.NewStyles(true)).View()
		if !strings.Contains(view, "Starting with question ID: 1") {
			t.Fatalf("expected pin confirmation, got %q", view)
		}
	})
}

// TestFormatInputTruncatesRunes verifies long multibyte answers stay valid UTF-8.
func TestFormatInputTruncatesRunes(t *testing.T) {
	long := strings.Repeat("é", inputLimit+5)
	got := formatInput(long)
	if !utf8.ValidString(got) {
		t.Fatalf("expected valid UTF-8, got %q", got)
	}
	if want := strings.Repeat("é", inputLimit-3) + "..."; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if short := strings.Repeat("é", 20); formatInput(short) != short {
		t.Fatalf("expected %q unchanged", short)
	}
}

// TestModelIgnoresTypingAfterAnswer verifies the verdict screen is read-only.
func TestModelIgnoresTypingAfterAnswer(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		v, s := flagQuiz(t, 2)
		m := NewModel(v, s, quiz.NewStyles(true))
		m = press(m, tea.KeyEnter)
		m = typeText(m, "x")
		if m.input.Value() != "" {
			t.Fatalf("expected input to stay empty, got %q", m.input.Value())
		}
		if m.State().History[0].Input != "" || m.State().History[0].Correct {
			t.Fatalf("expected blank incorrect answer, got %+v", m.State().History[0])
		}
	})
}

// TestRowsForState verifies history rows are rendered for the table.
func TestRowsForState(t *testing.T) {
	state := State{History: []HistoryRow{
		{QuestionID: 7, Input: "", Answer: "0x12", Correct: false},
		{QuestionID: 9, Input: "b", Answer: "ACK", Correct: true},
	}}
	rows := rowsForState(state)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "7" || rows[0][1] != "(blank)" || rows[0][3] != "incorrect" {
		t.Fatalf("unexpected first row %v", rows[0])
	}
	if rows[1][3] != "correct" {
		t.Fatalf("unexpected second row %v", rows[1])
	}
}

func flagQuiz(t *testing.T, count int) (quiz.Variant, session.Session) {
	t.Helper()
	spec, err := question.NormalizeSpec(question.Spec{Version: 1, Questions: []question.Question{
		{ID: 1, Prompt: "Which flags answer a SYN?", Options: []string{"SYN", "SYN+ACK", "ACK"}, Answer: "SYN+ACK"},
		{ID: 2, Prompt: "Which flag resets?", Options: []string{"RST", "FIN"}, Answer: "RST"},
	}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	bank, err := question.NewBank("tcp-flags", spec.Questions)
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	first := 1
	s, err := session.Start(bank, session.Options{Count: count, PinnedID: &first}, session.NewRand(3))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return quiz.Variant{Title: "TCP Flags Quiz", Bank: bank, Matcher: answer.TCPFlags, Corpus: packet.NewCorpus()}, s
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(m Model, key tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

// runWithTimeout executes a test body with a timeout.
func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
