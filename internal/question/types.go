package question

import "netquiz/internal/hexdump"

// Spec defines the question bank schema loaded from YAML or JSON.
type Spec struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single multiple-choice question with one canonical answer.
// Packet indexes the external packet corpus and is nil for questions without
// a dump.
type Question struct {
	ID          int      `json:"id" yaml:"id"`
	Prompt      string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Answer      string   `json:"answer" yaml:"answer"`
	Explanation string   `json:"explanation" yaml:"explanation"`
	Packet      *int     `json:"packet,omitempty" yaml:"packet,omitempty"`
	HexLocation string   `json:"hex_location,omitempty" yaml:"hex_location,omitempty"`

	location *Location
}

// Location returns the parsed hex location, if the question has one.
func (q Question) Location() (Location, bool) {
	if q.location == nil {
		return Location{}, false
	}
	return *q.location, true
}

// Highlight returns the byte span that justifies the answer.
func (q Question) Highlight() *hexdump.Span {
	if q.location == nil {
		return nil
	}
	span := q.location.Span()
	return &span
}

// HasPacket reports whether the question refers to a corpus packet.
func (q Question) HasPacket() bool {
	return q.Packet != nil
}
