package live

import (
	"github.com/charmbracelet/lipgloss"

	"netquiz/internal/quiz"
)

// renderHeader renders the quiz title and progress line.
func renderHeader(title string, state State, noColor bool) string {
	heading := stylize(title, noColor, lipgloss.Color("33"))
	header := heading + "\n" + stylize(formatProgress(state), noColor, lipgloss.Color("242"))
	if notice := noticeFor(state); notice != "" {
		header += "\n" + stylize(notice, noColor, lipgloss.Color("220"))
	}
	return header
}

// noticeFor returns the selection notice while the first question is open.
func noticeFor(state State) string {
	if state.Phase != PhaseAsking || state.Session.Index != 0 {
		return ""
	}
	return state.Session.Notice
}

// renderBody renders the part of the screen that depends on the phase.
func renderBody(m Model) string {
	switch m.state.Phase {
	case PhaseAsking:
		return quiz.FormatRound(m.state.Round, m.styles) + "\n\n" + m.input.View()
	case PhaseAnswered:
		return quiz.FormatVerdict(m.state.Verdict, m.styles)
	default:
		summary := quiz.FormatSummary(m.state.Session.Result(), m.styles)
		if len(m.state.History) == 0 {
			return summary
		}
		return summary + "\n\n" + m.history.View()
	}
}

// renderFooter renders the key hints.
func renderFooter(phase Phase, noColor bool) string {
	return stylize(hintFor(phase), noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
