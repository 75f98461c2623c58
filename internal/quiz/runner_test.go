package quiz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netquiz/internal/answer"
	"netquiz/internal/packet"
	"netquiz/internal/question"
	"netquiz/internal/session"
)

func etherVariant(t *testing.T) Variant {
	t.Helper()
	zero := 0
	spec, err := question.NormalizeSpec(question.Spec{Version: 1, Questions: []question.Question{{
		ID:          2,
		Prompt:      "What is the EtherType value for ARP in the first packet?",
		Options:     []string{"0x0800", "0x0806", "0x8035", "0x86DD"},
		Answer:      "0x0806",
		Explanation: "0x0806 is the EtherType value for ARP.",
		Packet:      &zero,
		HexLocation: "000c 0806",
	}}})
	require.NoError(t, err)
	bank, err := question.NewBank("packets", spec.Questions)
	require.NoError(t, err)
	frame, err := packet.DecodeHex("ffffffffffff001a2b3c4d5e08060001080006040001")
	require.NoError(t, err)
	return Variant{
		Title:   "Packet Analysis Quiz",
		Bank:    bank,
		Matcher: answer.Plain,
		Corpus:  packet.NewCorpus(packet.Record{Name: "ARP Request", Data: frame}),
	}
}

func play(t *testing.T, v Variant, input string, pause bool) (session.Session, string, error) {
	t.Helper()
	s, err := session.Start(v.Bank, session.Options{Count: 20}, session.NewRand(1))
	require.NoError(t, err)
	var out bytes.Buffer
	runner := Runner{Variant: v, In: strings.NewReader(input), Out: &out, Styles: NewStyles(true), Pause: pause}
	final, err := runner.Run(context.Background(), s)
	return final, out.String(), err
}

func TestRunnerCorrectLetter(t *testing.T) {
	final, out, err := play(t, etherVariant(t), "B\n\n", true)
	require.NoError(t, err)
	assert.Equal(t, session.Result{Correct: 1, Total: 1}, final.Result())

	assert.Contains(t, out, "===== Packet Analysis Quiz =====")
	assert.Contains(t, out, "Number of questions: 1")
	assert.Contains(t, out, "Question 1/1 [ID: 2]:")
	assert.Contains(t, out, "Packet: ARP Request")
	assert.Contains(t, out, "0000  ff ff ff ff ff ff 00 1a 2b 3c 4d 5e 08 06 00 01")
	assert.Contains(t, out, "  B) 0x0806")
	assert.Contains(t, out, "✓ Correct!")
	assert.Contains(t, out, "0000  ff ff ff ff ff ff 00 1a 2b 3c 4d 5e [08] [06] 00 01")
	assert.Contains(t, out, "Explanation: 0x0806 is the EtherType value for ARP.")
	assert.Contains(t, out, "Relevant hex bytes: 000c 0806")
	assert.Contains(t, out, "Press Enter to continue...")
	assert.Contains(t, out, "Your score: 1/1 (100.0%)")
}

func TestRunnerHexAndWrongLetter(t *testing.T) {
	final, _, err := play(t, etherVariant(t), "0x806", false)
	require.NoError(t, err)
	assert.Equal(t, 1, final.Score)

	final, out, err := play(t, etherVariant(t), "C\n", false)
	require.NoError(t, err)
	assert.Equal(t, 0, final.Score)
	assert.Contains(t, out, "✗ Incorrect. The correct answer is: 0x0806")
	assert.Contains(t, out, "Your score: 0/1 (0.0%)")
	assert.NotContains(t, out, "Press Enter")
}

func TestRunnerInterruptedOnEOF(t *testing.T) {
	final, out, err := play(t, etherVariant(t), "", true)
	require.True(t, errors.Is(err, ErrInterrupted))
	assert.Equal(t, session.InProgress, final.State())
	assert.NotContains(t, out, "Your score")
}

func TestRunnerCancelledContext(t *testing.T) {
	v := etherVariant(t)
	s, err := session.Start(v.Bank, session.Options{Count: 1}, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reader, writer := io.Pipe()
	defer writer.Close()
	_, err = Runner{Variant: v, In: reader, Out: &bytes.Buffer{}, Styles: NewStyles(true)}.Run(ctx, s)
	require.ErrorIs(t, err, ErrInterrupted)
}

func TestRunnerShowsNotice(t *testing.T) {
	v := etherVariant(t)
	missing := 42
	s, err := session.Start(v.Bank, session.Options{Count: 1, PinnedID: &missing}, nil)
	require.NoError(t, err)
	var out bytes.Buffer
	_, err = Runner{Variant: v, In: strings.NewReader("a\n"), Out: &out, Styles: NewStyles(true)}.Run(context.Background(), s)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Question ID 42 not found. Starting with random questions.")
}

func TestFormatRoundWithoutPacket(t *testing.T) {
	round := Round{Number: 3, Total: 10, QuestionID: 14, Prompt: "Which flag combination is represented by tcp[13] = 0x11?", Options: []string{"SYN+ACK", "FIN+ACK"}}
	out := FormatRound(round, NewStyles(true))
	assert.Equal(t, "Question 3/10 [ID: 14]:\nWhich flag combination is represented by tcp[13] = 0x11?\n\n  A) SYN+ACK\n  B) FIN+ACK", out)
}

func TestFormatVerdictDefaults(t *testing.T) {
	out := FormatVerdict(Verdict{Correct: false, Answer: "FIN+ACK"}, NewStyles(true))
	assert.Equal(t, "✗ Incorrect. The correct answer is: FIN+ACK\nExplanation: No explanation available.", out)
}
