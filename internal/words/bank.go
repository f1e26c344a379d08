// Package words holds the fixed list of secret phrases and the uniform
// selector over it.
package words

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/samber/lo"
)

// Bank is an immutable, ordered list of candidate phrases. Entries are
// uppercase and distinct; selection is uniform and history-independent,
// so repeats across rounds (including back to back) are expected.
type Bank struct {
	entries []string
}

// NewBank builds a bank from raw entries. Entries are trimmed and
// uppercased; empties and duplicates are dropped. An empty result is an
// error since the game cannot start without a word.
func NewBank(entries []string) (*Bank, error) {
	cleaned := lo.FilterMap(entries, func(e string, _ int) (string, bool) {
		e = strings.ToUpper(strings.TrimSpace(e))
		return e, e != ""
	})
	cleaned = lo.Uniq(cleaned)
	if len(cleaned) == 0 {
		return nil, errors.New("words: empty word list")
	}
	return &Bank{entries: cleaned}, nil
}

// Pick returns one entry uniformly at random, independent of history.
func (b *Bank) Pick(rng *rand.Rand) string {
	return b.entries[rng.Intn(len(b.entries))]
}

// Len returns the number of entries.
func (b *Bank) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the word list in bank order.
func (b *Bank) Entries() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}
