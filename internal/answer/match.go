// Package answer decides whether a typed answer is equivalent to a canonical one.
package answer

import (
	"math/big"
	"strings"
)

// Matcher compares a user answer with the canonical answer of a question.
type Matcher interface {
	Matches(input, canonical string) bool
}

// Equivalence applies the comparison classes in order: exact text, boolean
// shortcuts, hexadecimal value and, when Flags is set, named flag sets.
type Equivalence struct {
	Flags *FlagTable
}

// Plain matches text, booleans and hex literals.
var Plain = Equivalence{}

// TCPFlags additionally treats TCP flag names, values and filters as equivalent.
var TCPFlags = Equivalence{Flags: DefaultFlags}

// Matches reports whether input is equivalent to canonical. Ill-formed input
// never errors; it simply does not match.
func (e Equivalence) Matches(input, canonical string) bool {
	user := Normalize(input)
	want := Normalize(canonical)
	if user == want {
		return true
	}
	if matched, ok := matchBoolean(user, want); ok {
		return matched
	}
	if matched, ok := matchHex(user, want); ok {
		return matched
	}
	if e.Flags != nil {
		return e.Flags.Equivalent(user, want)
	}
	return false
}

// Matches compares with the TCP flag table enabled.
func Matches(input, canonical string) bool {
	return TCPFlags.Matches(input, canonical)
}

// matchBoolean applies only when the canonical answer is "true" or "false".
func matchBoolean(user, want string) (matched bool, applies bool) {
	if want != "true" && want != "false" {
		return false, false
	}
	switch user {
	case "t":
		user = "true"
	case "f":
		user = "false"
	case "true", "false":
	default:
		return false, false
	}
	return user == want, true
}

// matchHex applies only when both sides carry the 0x prefix.
func matchHex(user, want string) (matched bool, applies bool) {
	if !strings.HasPrefix(user, "0x") || !strings.HasPrefix(want, "0x") {
		return false, false
	}
	u, ok := parseHex(user)
	if !ok {
		return false, true
	}
	w, ok := parseHex(want)
	if !ok {
		return false, true
	}
	return u.Cmp(w) == 0, true
}

// parseHex reads a 0x-prefixed value of any width.
func parseHex(value string) (*big.Int, bool) {
	digits := strings.TrimPrefix(value, "0x")
	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return nil, false
	}
	return new(big.Int).SetString(digits, 16)
}
