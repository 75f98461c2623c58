package packet

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Layers decodes data as an Ethernet frame and names each decoded layer in
// order. A frame that fails to decode part way ends with "DecodeFailure".
func Layers(data []byte) []string {
	decoded := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.NoCopy)
	names := make([]string, 0, 4)
	for _, layer := range decoded.Layers() {
		names = append(names, layer.LayerType().String())
	}
	return names
}

// Layers names the protocol layers of the record's frame.
func (r Record) Layers() []string {
	return Layers(r.Data)
}
