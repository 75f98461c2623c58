package question

import "strings"

// ResolveChoice maps a single letter A-D (any case) to the option at that
// position. Anything else, including letters past the last option, is
// returned unchanged.
func ResolveChoice(input string, options []string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) != 1 {
		return input
	}
	letter := trimmed[0] | 0x20
	if letter < 'a' || letter >= 'a'+MaxOptions {
		return input
	}
	index := int(letter - 'a')
	if index >= len(options) {
		return input
	}
	return options[index]
}

// Letter labels the option at index as A, B, C or D.
func Letter(index int) string {
	return string(rune('A' + index))
}
