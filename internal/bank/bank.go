// Package bank holds the built-in question banks.
package bank

import (
	_ "embed"
	"fmt"

	"netquiz/internal/question"
)

// Bank names.
const (
	TCPFlagsName = "tcp-flags"
	PacketsName  = "packets"
)

//go:embed data/tcp_flags.yaml
var tcpFlagsYAML []byte

//go:embed data/packets.yaml
var packetsYAML []byte

// TCPFlags builds the TCP flag and tcpdump filter bank.
func TCPFlags() (*question.Bank, error) {
	return build(TCPFlagsName, tcpFlagsYAML)
}

// Packets builds the packet analysis bank. Its hex locations still need
// question.CheckPackets against the loaded corpus.
func Packets() (*question.Bank, error) {
	return build(PacketsName, packetsYAML)
}

func build(name string, data []byte) (*question.Bank, error) {
	spec, err := question.ParseSpec(data, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%s bank: %w", name, err)
	}
	bank, err := question.NewBank(name, spec.Questions)
	if err != nil {
		return nil, fmt.Errorf("%s bank: %w", name, err)
	}
	return bank, nil
}
