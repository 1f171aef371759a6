package vocab

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"
)

// WordCount is a vocabulary item together with its observed frequency.
type WordCount struct {
	Word  string
	Count int
}

func (wc WordCount) String() string {
	return fmt.Sprintf("(%q,%d)", wc.Word, wc.Count)
}

// Table is an ordered sequence of word/count pairs, usually in order of
// frequency rank. Words are not guaranteed to be unique.
//
// Tables are immutable. Every operation deriving a table from another one
// creates a new table, which makes it safe to memoize derivations by the
// table's fingerprint.
type Table struct {
	entries []WordCount
	fp      uint64
	derive  sync.Once
	cum     []int64 // cumulative counts, for weighted selection
}

// NewTable creates a table from a list of entries. The list is copied.
func NewTable(entries []WordCount) *Table {
	t := &Table{entries: make([]WordCount, len(entries))}
	copy(t.entries, entries)
	t.fp = fingerprint(t.entries)
	return t
}

// TableOf is a shortcut for creating small tables, mostly for testing.
// Arguments are pairs of (string, int).
//
//     TableOf("duck", 1, "pig", 2)
//
func TableOf(pairs ...interface{}) *Table {
	if len(pairs)%2 != 0 {
		panic("vocab.TableOf needs (word, count) pairs")
	}
	entries := make([]WordCount, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		entries = append(entries, WordCount{Word: pairs[i].(string), Count: pairs[i+1].(int)})
	}
	return NewTable(entries)
}

func fingerprint(entries []WordCount) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(entries)))
	h.Write(buf[:])
	for _, e := range entries {
		h.Write([]byte(e.Word))
		binary.LittleEndian.PutUint64(buf[:], uint64(e.Count))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Len returns the number of entries. A nil table has length 0.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// IsEmpty returns true if t has no entries.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// At returns entry number i.
func (t *Table) At(i int) WordCount {
	return t.entries[i]
}

// Entries returns a copy of the entries of t.
func (t *Table) Entries() []WordCount {
	if t == nil {
		return nil
	}
	entries := make([]WordCount, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Words returns the words of t, in table order.
func (t *Table) Words() []string {
	words := make([]string, t.Len())
	for i := range words {
		words[i] = t.entries[i].Word
	}
	return words
}

// Fingerprint is a structural hash over the entries of t.
// Tables with equal entries have equal fingerprints.
func (t *Table) Fingerprint() uint64 {
	if t == nil {
		return fingerprint(nil)
	}
	return t.fp
}

// Equal returns true if t and other have identical entries, in identical order.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() || t.Fingerprint() != other.Fingerprint() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		if t.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

func (t *Table) cumulative() []int64 {
	t.derive.Do(func() {
		t.cum = make([]int64, len(t.entries))
		var sum int64
		for i, e := range t.entries {
			if e.Count > 0 {
				sum += int64(e.Count)
			}
			t.cum[i] = sum
		}
	})
	return t.cum
}

// TotalCount returns the sum of all (positive) counts.
func (t *Table) TotalCount() int64 {
	if t.Len() == 0 {
		return 0
	}
	cum := t.cumulative()
	return cum[len(cum)-1]
}

// SearchWeight returns the index of the entry a weight position x falls into,
// where 0 ≤ x < TotalCount(). Entry i covers the half-open interval
// [sum of counts before i, sum of counts up to and including i).
// Entries with a count of 0 are never selected.
func (t *Table) SearchWeight(x float64) int {
	cum := t.cumulative()
	i := sort.Search(len(cum), func(i int) bool { return float64(cum[i]) > x })
	if i == len(cum) { // x out of range, clamp to last entry with weight
		for i = len(cum) - 1; i > 0 && cum[i] == cum[i-1]; i-- {
		}
	}
	return i
}

func (t *Table) String() string {
	const maxShown = 5
	var b strings.Builder
	b.WriteString("Table[")
	for i := 0; i < t.Len() && i < maxShown; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.entries[i].String())
	}
	if t.Len() > maxShown {
		fmt.Fprintf(&b, ", … (%d entries)", t.Len())
	}
	b.WriteString("]")
	return b.String()
}
