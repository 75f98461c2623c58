package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"netquiz/internal/logging"
	"netquiz/internal/session"
)

// ErrInterrupted indicates the player left before the last question.
var ErrInterrupted = errors.New("quiz terminated by user")

// Runner plays a session over plain line-oriented input and output.
type Runner struct {
	Variant Variant
	In      io.Reader
	Out     io.Writer
	Styles  Styles
	// Pause waits for Enter after each verdict.
	Pause bool
}

type lineResult struct {
	line string
	err  error
}

// Run asks every remaining question of s and returns the completed session.
// On interrupt the partially played session is returned with ErrInterrupted.
func (r Runner) Run(ctx context.Context, s session.Session) (session.Session, error) {
	logger := logging.FromContext(ctx).With().Str("session", s.ID).Logger()
	reader := bufio.NewReader(r.In)

	fmt.Fprintln(r.Out, FormatBanner(r.Variant.Title, s.Total(), r.Styles))
	if s.Notice != "" {
		fmt.Fprintln(r.Out, s.Notice)
	}
	for s.State() == session.InProgress {
		round, _ := NewRound(r.Variant, s, r.Styles)
		fmt.Fprintf(r.Out, "\n%s\n\nYour answer: ", FormatRound(round, r.Styles))

		line, err := readLine(ctx, reader)
		if err != nil {
			fmt.Fprintln(r.Out)
			logger.Debug().Err(err).Int("answered", s.Index).Msg("input closed")
			return s, ErrInterrupted
		}
		next, outcome, err := s.Answer(r.Variant.Matcher, line)
		if err != nil {
			return s, err
		}
		s = next
		logger.Debug().
			Int("question_id", outcome.Question.ID).
			Str("input", outcome.Input).
			Str("resolved", outcome.Resolved).
			Bool("correct", outcome.Correct).
			Msg("answer scored")

		fmt.Fprintf(r.Out, "\n%s\n", FormatVerdict(NewVerdict(r.Variant, outcome, r.Styles), r.Styles))
		if r.Pause {
			fmt.Fprint(r.Out, "\nPress Enter to continue...")
			if _, err := readLine(ctx, reader); err != nil {
				if ctx.Err() != nil {
					fmt.Fprintln(r.Out)
					return s, ErrInterrupted
				}
				fmt.Fprintln(r.Out)
			}
		}
	}
	fmt.Fprintf(r.Out, "\n%s\n", FormatSummary(s.Result(), r.Styles))
	logger.Info().Int("correct", s.Score).Int("total", s.Total()).Msg("quiz complete")
	return s, nil
}

// readLine returns the next line without its terminator. A final line
// without a newline still counts; a bare EOF is reported as io.EOF.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	results := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		results <- lineResult{line: strings.TrimRight(line, "\r\n"), err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-results:
		return result.line, result.err
	}
}
