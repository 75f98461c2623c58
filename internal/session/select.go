package session

import (
	"fmt"
	"math/rand/v2"

	"netquiz/internal/question"
)

// Selection is the ordered question list for one run. Notice tells the
// player how a pinned id was honored.
type Selection struct {
	Questions []question.Question
	Notice    string
	Pinned    bool
}

// Select samples up to count questions without replacement. A pinned
// question that exists takes position 0 and the rest are drawn from the
// remaining pool; an unknown pin falls back to the unpinned path with a
// notice. Asking for more than the bank holds returns fewer questions.
func Select(bank *question.Bank, opts Options, rng *rand.Rand) (Selection, error) {
	if bank == nil || bank.Len() == 0 {
		return Selection{}, ErrEmptyBank
	}
	if opts.Count <= 0 {
		return Selection{}, fmt.Errorf("%w: %d", ErrInvalidCount, opts.Count)
	}
	pool := bank.All()

	if opts.PinnedID != nil {
		id := *opts.PinnedID
		if pinned, ok := bank.Get(id); ok {
			rest := make([]question.Question, 0, len(pool)-1)
			for _, q := range pool {
				if q.ID != id {
					rest = append(rest, q)
				}
			}
			shuffle(rest, rng)
			selected := append([]question.Question{pinned}, rest[:min(opts.Count-1, len(rest))]...)
			return Selection{
				Questions: selected,
				Notice:    fmt.Sprintf("Starting with question ID: %d", id),
				Pinned:    true,
			}, nil
		}
		shuffle(pool, rng)
		return Selection{
			Questions: pool[:min(opts.Count, len(pool))],
			Notice:    fmt.Sprintf("Question ID %d not found. Starting with random questions.", id),
		}, nil
	}

	shuffle(pool, rng)
	return Selection{Questions: pool[:min(opts.Count, len(pool))]}, nil
}

func shuffle(questions []question.Question, rng *rand.Rand) {
	swap := func(i, j int) { questions[i], questions[j] = questions[j], questions[i] }
	if rng == nil {
		rand.Shuffle(len(questions), swap)
		return
	}
	rng.Shuffle(len(questions), swap)
}

// NewRand returns a PCG source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
