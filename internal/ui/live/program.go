package live

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"netquiz/internal/logging"
	"netquiz/internal/quiz"
	"netquiz/internal/session"
)

// Run plays s in a Bubble Tea program until the player finishes or quits.
// Quitting early returns quiz.ErrInterrupted with the partial session.
func Run(ctx context.Context, in io.Reader, out io.Writer, v quiz.Variant, s session.Session, styles quiz.Styles) (session.Session, error) {
	logger := logging.FromContext(ctx).With().Str("session", s.ID).Logger()
	program := tea.NewProgram(
		NewModel(v, s, styles),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	model, ok := final.(Model)
	if !ok {
		model = Model{state: State{Session: s}}
	}
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			logger.Debug().Err(err).Msg("live quiz stopped")
			return model.Session(), quiz.ErrInterrupted
		}
		return model.Session(), err
	}
	if model.Err() != nil {
		return model.Session(), model.Err()
	}
	if model.Interrupted() {
		return model.Session(), quiz.ErrInterrupted
	}
	result := model.Session().Result()
	logger.Info().Int("correct", result.Correct).Int("total", result.Total).Msg("quiz complete")
	return model.Session(), nil
}
