package question

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"netquiz/internal/hexdump"
)

// ErrMalformedLocation indicates a hex location that is not "<offset> <bytes>".
var ErrMalformedLocation = errors.New("malformed hex location")

// Location pins the bytes that justify an answer: a hex byte offset followed by
// the expected bytes, as in "000c 0806".
type Location struct {
	Offset   int
	Expected []byte
}

// Span converts the location into a highlight range.
func (l Location) Span() hexdump.Span {
	return hexdump.Span{Offset: l.Offset, Length: len(l.Expected)}
}

// String renders the location in its source form.
func (l Location) String() string {
	return fmt.Sprintf("%04x %s", l.Offset, hex.EncodeToString(l.Expected))
}

// Check verifies the location lies inside data and the bytes agree.
func (l Location) Check(data []byte) error {
	if l.Offset < 0 || l.Offset+len(l.Expected) > len(data) {
		return fmt.Errorf("span %d+%d outside packet of %d bytes", l.Offset, len(l.Expected), len(data))
	}
	if got := data[l.Offset : l.Offset+len(l.Expected)]; !bytes.Equal(got, l.Expected) {
		return fmt.Errorf("bytes at %04x are %x, expected %x", l.Offset, got, l.Expected)
	}
	return nil
}

// ParseLocation parses "<hex offset> <hex bytes>".
func ParseLocation(value string) (Location, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return Location{}, fmt.Errorf("%w %q", ErrMalformedLocation, value)
	}
	offset, err := strconv.ParseUint(fields[0], 16, 31)
	if err != nil {
		return Location{}, fmt.Errorf("%w %q: offset: %v", ErrMalformedLocation, value, err)
	}
	expected, err := hex.DecodeString(fields[1])
	if err != nil {
		return Location{}, fmt.Errorf("%w %q: bytes: %v", ErrMalformedLocation, value, err)
	}
	if len(expected) == 0 {
		return Location{}, fmt.Errorf("%w %q: no bytes", ErrMalformedLocation, value)
	}
	return Location{Offset: int(offset), Expected: expected}, nil
}
