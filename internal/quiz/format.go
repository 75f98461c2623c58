package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"netquiz/internal/hexdump"
	"netquiz/internal/question"
	"netquiz/internal/session"
)

// Styles controls coloring of quiz output.
type Styles struct {
	NoColor   bool
	Mark      hexdump.Marker
	Title     lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles returns the quiz palette, or plain text when noColor is set.
func NewStyles(noColor bool) Styles {
	styles := Styles{
		NoColor:   noColor,
		Mark:      hexdump.StyleMarker(hexdump.HighlightStyle),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
	if noColor {
		styles.Mark = hexdump.Brackets
	}
	return styles
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if s.NoColor {
		return text
	}
	return style.Render(text)
}

// FormatBanner renders the header shown before the first question.
func FormatBanner(title string, total int, styles Styles) string {
	heading := "===== " + title + " ====="
	var b strings.Builder
	b.WriteString(styles.render(styles.Title, heading))
	fmt.Fprintf(&b, "\nNumber of questions: %d\n", total)
	b.WriteString(strings.Repeat("=", len(heading)))
	return b.String()
}

// FormatRound renders the prompt, the unhighlighted dump and the options.
func FormatRound(round Round, styles Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d/%d [ID: %d]:\n", round.Number, round.Total, round.QuestionID)
	b.WriteString(round.Prompt)
	b.WriteString("\n")
	if round.Dump != "" {
		fmt.Fprintf(&b, "\nPacket: %s\nHex Dump:\n%s\n", round.PacketName, round.Dump)
	}
	for i, option := range round.Options {
		fmt.Fprintf(&b, "\n  %s) %s", question.Letter(i), option)
	}
	return b.String()
}

// FormatVerdict renders correctness, the highlighted dump and the explanation.
func FormatVerdict(verdict Verdict, styles Styles) string {
	var b strings.Builder
	if verdict.Correct {
		b.WriteString(styles.render(styles.Correct, "✓ Correct!"))
	} else {
		b.WriteString(styles.render(styles.Incorrect, "✗ Incorrect. The correct answer is: "+verdict.Answer))
	}
	b.WriteString("\n")
	if verdict.Dump != "" {
		fmt.Fprintf(&b, "\nPacket: %s\nHex Dump:\n%s\n", verdict.PacketName, verdict.Dump)
	}
	explanation := verdict.Explanation
	if explanation == "" {
		explanation = "No explanation available."
	}
	b.WriteString("Explanation: " + explanation)
	if verdict.Location != "" {
		b.WriteString("\n" + styles.render(styles.Muted, "Relevant hex bytes: "+verdict.Location))
	}
	return b.String()
}

// FormatSummary renders the final score.
func FormatSummary(result session.Result, styles Styles) string {
	heading := "===== Quiz Complete ====="
	return fmt.Sprintf("%s\nYour score: %d/%d (%.1f%%)\n%s",
		styles.render(styles.Title, heading),
		result.Correct,
		result.Total,
		result.Percent(),
		strings.Repeat("=", len(heading)),
	)
}
