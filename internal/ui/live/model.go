package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"netquiz/internal/quiz"
	"netquiz/internal/session"
)

// Model renders an interactive quiz using Bubble Tea.
type Model struct {
	variant     quiz.Variant
	styles      quiz.Styles
	state       State
	input       textinput.Model
	history     table.Model
	err         error
	interrupted bool
}

// NewModel constructs a live UI model for a started session.
func NewModel(v quiz.Variant, s session.Session, styles quiz.Styles) Model {
	input := textinput.New()
	input.Prompt = "Your answer: "
	input.Placeholder = "A-D or a value"
	input.CharLimit = inputLimit
	input.Focus()
	m := Model{
		variant: v,
		styles:  styles,
		state:   Begin(v, s, styles),
		input:   input,
	}
	if m.state.Phase == PhaseDone {
		m.history = newHistoryTable(m.state, styles.NoColor)
	}
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update consumes key presses and forwards typing to the input field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(typed.Width-len(m.input.Prompt)-1, 1)
		return m, nil
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			if m.state.Phase != PhaseDone {
				m.interrupted = true
			}
			return m, tea.Quit
		case tea.KeyEnter:
			return m.enter()
		}
	}
	if m.state.Phase != PhaseAsking {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) enter() (tea.Model, tea.Cmd) {
	switch m.state.Phase {
	case PhaseAsking:
		next, err := Submit(m.state, m.variant, m.styles, m.input.Value())
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.state = next
		m.input.Reset()
		return m, nil
	case PhaseAnswered:
		m.state = Advance(m.state, m.variant, m.styles)
		if m.state.Phase == PhaseDone {
			m.history = newHistoryTable(m.state, m.styles.NoColor)
		}
		return m, nil
	default:
		return m, tea.Quit
	}
}

// View renders the live UI.
func (m Model) View() string {
	header := renderHeader(m.variant.Title, m.state, m.styles.NoColor)
	footer := renderFooter(m.state.Phase, m.styles.NoColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", renderBody(m), "", footer) + "\n"
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Session returns the session as last advanced by the player.
func (m Model) Session() session.Session {
	return m.state.Session
}

// Interrupted reports whether the player quit before the summary.
func (m Model) Interrupted() bool {
	return m.interrupted
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}
