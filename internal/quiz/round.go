// Package quiz turns session transitions into the text shown for each
// question and drives a line-oriented run.
package quiz

import (
	"netquiz/internal/answer"
	"netquiz/internal/hexdump"
	"netquiz/internal/packet"
	"netquiz/internal/question"
	"netquiz/internal/session"
)

// Variant bundles a bank with the matcher and packets it is played with.
type Variant struct {
	Title   string
	Bank    *question.Bank
	Matcher answer.Matcher
	Corpus  packet.Corpus
}

func (v Variant) packetFor(q question.Question) (packet.Record, bool) {
	if q.Packet == nil {
		return packet.Record{}, false
	}
	return v.Corpus.Get(*q.Packet)
}

// Round is what the player sees before answering.
type Round struct {
	Number     int
	Total      int
	QuestionID int
	Prompt     string
	Options    []string
	PacketName string
	Dump       string
}

// Verdict is what the player sees after answering. Dump carries the
// highlighted bytes that justify the answer.
type Verdict struct {
	Correct     bool
	Answer      string
	Explanation string
	PacketName  string
	Dump        string
	Location    string
}

// NewRound builds the round for the session's current question.
func NewRound(v Variant, s session.Session, styles Styles) (Round, bool) {
	q, ok := s.Current()
	if !ok {
		return Round{}, false
	}
	round := Round{
		Number:     s.Index + 1,
		Total:      s.Total(),
		QuestionID: q.ID,
		Prompt:     q.Prompt,
		Options:    q.Options,
	}
	if record, ok := v.packetFor(q); ok {
		round.PacketName = record.Name
		round.Dump = hexdump.Render(record.Data, nil, styles.Mark)
	}
	return round, true
}

// NewVerdict builds the feedback for an answered question.
func NewVerdict(v Variant, outcome session.Outcome, styles Styles) Verdict {
	q := outcome.Question
	verdict := Verdict{
		Correct:     outcome.Correct,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	}
	if record, ok := v.packetFor(q); ok {
		verdict.PacketName = record.Name
		verdict.Dump = hexdump.Render(record.Data, q.Highlight(), styles.Mark)
		verdict.Location = q.HexLocation
	}
	return verdict
}
