// Package packet loads the sample packets that quiz questions refer to.
package packet

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyCorpus indicates a corpus file without packets.
	ErrEmptyCorpus = errors.New("packet corpus has no packets")
	// ErrInvalidHex indicates a hex_dump that is not an even-length hex string.
	ErrInvalidHex = errors.New("invalid hex dump")
)

// Record is a named raw packet. It is read-only once loaded.
type Record struct {
	Name string
	Data []byte
}

// Corpus is the ordered list of packets questions index into.
type Corpus struct {
	records []Record
}

// NewCorpus wraps already-decoded records.
func NewCorpus(records ...Record) Corpus {
	return Corpus{records: append([]Record(nil), records...)}
}

// Len returns the number of packets.
func (c Corpus) Len() int {
	return len(c.records)
}

// Get returns the packet at index.
func (c Corpus) Get(index int) (Record, bool) {
	if index < 0 || index >= len(c.records) {
		return Record{}, false
	}
	return c.records[index], true
}

type corpusFile struct {
	Packets []recordFile `json:"packets" yaml:"packets"`
}

type recordFile struct {
	Name    string `json:"name" yaml:"name"`
	HexDump string `json:"hex_dump" yaml:"hex_dump"`
}

// Load reads a corpus file. Files ending in .yml or .yaml are YAML, anything
// else is JSON.
func Load(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("read packet corpus: %w", err)
	}
	var file corpusFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil {
			return Corpus{}, fmt.Errorf("parse packet corpus %s: %w", path, err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&file); err != nil {
			return Corpus{}, fmt.Errorf("parse packet corpus %s: %w", path, err)
		}
	}
	return decode(file)
}

func decode(file corpusFile) (Corpus, error) {
	if len(file.Packets) == 0 {
		return Corpus{}, ErrEmptyCorpus
	}
	records := make([]Record, 0, len(file.Packets))
	for i, raw := range file.Packets {
		data, err := DecodeHex(raw.HexDump)
		if err != nil {
			return Corpus{}, fmt.Errorf("packets[%d] %q: %w", i, raw.Name, err)
		}
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			name = fmt.Sprintf("packet %d", i)
		}
		records = append(records, Record{Name: name, Data: data})
	}
	return Corpus{records: records}, nil
}

// DecodeHex decodes a contiguous hex string with no separators.
func DecodeHex(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidHex)
	}
	if len(value)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(value))
	}
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return data, nil
}
