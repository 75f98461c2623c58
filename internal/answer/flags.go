package answer

import (
	"fmt"
	"strings"
)

// Flag is a TCP control bit as found in byte 13 of the TCP header.
type Flag struct {
	Name string
	Bit  uint8
}

// TCP control flags in bit order.
var (
	FIN = Flag{Name: "fin", Bit: 0x01}
	SYN = Flag{Name: "syn", Bit: 0x02}
	RST = Flag{Name: "rst", Bit: 0x04}
	PSH = Flag{Name: "psh", Bit: 0x08}
	ACK = Flag{Name: "ack", Bit: 0x10}
	URG = Flag{Name: "urg", Bit: 0x20}
)

// FlagTable maps a canonical flag token to the set of representations that
// stand for it. Two answers are equivalent when both resolve to the same key.
type FlagTable struct {
	entries map[string]map[string]struct{}
	index   map[string]string
}

// NewFlagTable builds a table holding every single flag plus the given
// combinations. Each combination is keyed by its names joined with "+" in the
// order given.
func NewFlagTable(singles []Flag, combinations ...[]Flag) *FlagTable {
	table := &FlagTable{
		entries: map[string]map[string]struct{}{},
		index:   map[string]string{},
	}
	for _, flag := range singles {
		table.add([]Flag{flag})
	}
	for _, combination := range combinations {
		table.add(combination)
	}
	return table
}

// DefaultFlags covers the six classic flags and the combinations the TCP flag
// quiz asks about.
var DefaultFlags = NewFlagTable(
	[]Flag{FIN, SYN, RST, PSH, ACK, URG},
	[]Flag{FIN, ACK},
	[]Flag{SYN, ACK},
	[]Flag{RST, ACK},
	[]Flag{PSH, ACK},
	[]Flag{ACK, URG},
	[]Flag{FIN, SYN},
	[]Flag{FIN, SYN, RST},
	[]Flag{PSH, ACK, FIN},
	[]Flag{PSH, ACK, RST},
	[]Flag{FIN, PSH, URG},
)

func (t *FlagTable) add(flags []Flag) {
	names := make([]string, len(flags))
	filters := make([]string, len(flags))
	var bits uint8
	for i, flag := range flags {
		names[i] = flag.Name
		filters[i] = "tcp-" + flag.Name
		bits |= flag.Bit
	}
	key := strings.Join(names, "+")
	reps := map[string]struct{}{
		fmt.Sprintf("0x%02x", bits): {},
	}
	for _, perm := range permutations(names) {
		reps[strings.Join(perm, "+")] = struct{}{}
	}
	for _, perm := range permutations(filters) {
		reps[strings.Join(perm, "|")] = struct{}{}
	}
	t.entries[key] = reps
	for rep := range reps {
		t.index[rep] = key
	}
}

// Resolve returns the table key an answer stands for.
func (t *FlagTable) Resolve(value string) (string, bool) {
	if t == nil {
		return "", false
	}
	key, ok := t.index[flagToken(value)]
	return key, ok
}

// Representations lists the accepted spellings for a key.
func (t *FlagTable) Representations(key string) []string {
	reps := make([]string, 0, len(t.entries[key]))
	for rep := range t.entries[key] {
		reps = append(reps, rep)
	}
	return reps
}

// Equivalent reports whether both values resolve to the same entry.
func (t *FlagTable) Equivalent(a, b string) bool {
	left, ok := t.Resolve(a)
	if !ok {
		return false
	}
	right, ok := t.Resolve(b)
	return ok && left == right
}

// flagToken drops inner whitespace ("RST + ACK") and pads hex values to a
// full byte so "0x2" and "0x02" share a spelling.
func flagToken(value string) string {
	token := strings.Join(strings.Fields(Normalize(value)), "")
	if !strings.HasPrefix(token, "0x") {
		return token
	}
	if bits, ok := parseHex(token); ok && bits.IsUint64() && bits.Uint64() <= 0xff {
		return fmt.Sprintf("0x%02x", bits.Uint64())
	}
	return token
}

func permutations(items []string) [][]string {
	if len(items) <= 1 {
		return [][]string{append([]string(nil), items...)}
	}
	var out [][]string
	for i := range items {
		rest := make([]string, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, perm := range permutations(rest) {
			out = append(out, append([]string{items[i]}, perm...))
		}
	}
	return out
}
