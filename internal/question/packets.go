package question

import (
	"fmt"

	"netquiz/internal/packet"
)

// CheckPackets verifies every packet reference and hex location in the bank
// against the corpus.
func CheckPackets(bank *Bank, corpus packet.Corpus) error {
	collector := &issueCollector{}
	for _, question := range bank.questions {
		field := fmt.Sprintf("%s question %d", bank.name, question.ID)
		if question.Packet == nil {
			continue
		}
		record, ok := corpus.Get(*question.Packet)
		if !ok {
			collector.add(field+".packet", fmt.Sprintf("index %d not in corpus of %d packets", *question.Packet, corpus.Len()))
			continue
		}
		location, ok := question.Location()
		if !ok {
			continue
		}
		if err := location.Check(record.Data); err != nil {
			collector.add(field+".hex_location", fmt.Sprintf("%s: %v", record.Name, err))
		}
	}
	return collector.result()
}
