package packet

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestLayersOfSampleCorpus(t *testing.T) {
	corpus, err := Load(filepath.Join("..", "..", "packet_samples.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cases := []struct {
		index int
		want  string
	}{
		{index: 0, want: "ARP"},
		{index: 1, want: "IPv4"},
		{index: 2, want: "TCP"},
		{index: 3, want: "TCP"},
		{index: 4, want: "UDP"},
	}
	for _, tc := range cases {
		record, ok := corpus.Get(tc.index)
		if !ok {
			t.Fatalf("packet %d missing", tc.index)
		}
		names := record.Layers()
		if len(names) == 0 || names[0] != "Ethernet" {
			t.Fatalf("packet %d: expected Ethernet first, got %v", tc.index, names)
		}
		if !slices.Contains(names, tc.want) {
			t.Fatalf("packet %d: expected %s in %v", tc.index, tc.want, names)
		}
	}
}

func TestLayersOfTruncatedFrame(t *testing.T) {
	names := Layers([]byte{0xff, 0xff})
	if !slices.Contains(names, "DecodeFailure") {
		t.Fatalf("expected decode failure for a 2-byte frame, got %v", names)
	}
}
