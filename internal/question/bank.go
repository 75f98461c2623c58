package question

import "fmt"

// Bank is an immutable, ordered set of questions unique by id.
type Bank struct {
	name      string
	questions []Question
	byID      map[int]int
}

// NewBank builds a bank, failing with a ValidationError on duplicate ids.
func NewBank(name string, questions []Question) (*Bank, error) {
	collector := &issueCollector{}
	if len(questions) == 0 {
		collector.add(name, "bank has no questions")
	}
	bank := &Bank{
		name:      name,
		questions: make([]Question, len(questions)),
		byID:      make(map[int]int, len(questions)),
	}
	copy(bank.questions, questions)
	for i, question := range bank.questions {
		if _, exists := bank.byID[question.ID]; exists {
			collector.add(fmt.Sprintf("%s[%d].id", name, i), fmt.Sprintf("duplicate id %d", question.ID))
			continue
		}
		bank.byID[question.ID] = i
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return bank, nil
}

// Name identifies the bank in messages.
func (b *Bank) Name() string {
	return b.name
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Get looks a question up by id.
func (b *Bank) Get(id int) (Question, bool) {
	index, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[index], true
}

// All returns the questions in insertion order. The slice is a copy.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}
