package model

import (
	"strings"
	"sync"

	"github.com/npillmayer/wordsiv/core/vocab"
	"github.com/npillmayer/wordsiv/engine/filter"
)

// Sequential is a model returning words in table order. It keeps a cursor
// into the filtered vocabulary, which continues from call to call as long as
// the filter options stay the same. Changing the filter options restarts the
// cursor at the head of the newly filtered table.
//
// Frequency counts are ignored. Sequential is safe for concurrent use, but
// interleaving callers will see each other's cursor movements.
type Sequential struct {
	base
	mu     sync.Mutex
	cursor *Cursor
	last   filter.Options
}

var _ SentenceModel = (*Sequential)(nil)

// NewSequential creates a sequential model for a vocabulary source.
// conf.Seed is not used.
func NewSequential(src Source, conf Config) *Sequential {
	return &Sequential{base: base{src: src, conf: conf}}
}

// Words returns the next o.NumWords words (default 10) from the cursor.
// o.MinWords, o.MaxWords and o.Uniform do not apply.
func (m *Sequential) Words(o WordsOptions) ([]string, error) {
	n := o.NumWords
	if n <= 0 {
		n = DefaultSequenceWords
	}
	table, err := m.filtered(o.Filter)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cursor == nil || m.last != o.Filter || !m.cursor.table.Equal(table) {
		tracer().Debugf("sequence restarts for %s", o.Filter)
		m.cursor = NewCursor(table)
		m.last = o.Filter
	}
	words := make([]string, n)
	for i := range words {
		words[i] = m.cursor.Next()
	}
	if o.CapFirst {
		m.capitalize(words)
	}
	return words, nil
}

// Sentence joins the next o.NumWords words (default 10) with single spaces.
// No punctuation is added and case is kept.
func (m *Sequential) Sentence(o SentenceOptions) (string, error) {
	n := o.NumWords
	if n <= 0 {
		n = DefaultSequenceWords
	}
	words, err := m.Words(WordsOptions{NumWords: n, Filter: o.Filter})
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// Reset moves the cursor back to the start of the table.
func (m *Sequential) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursor = nil
}

// Cursor iterates cyclically over the words of a table.
type Cursor struct {
	table *vocab.Table
	pos   int
}

// NewCursor creates a cursor positioned at the head of a non-empty table.
func NewCursor(table *vocab.Table) *Cursor {
	return &Cursor{table: table}
}

// Next returns the word at the cursor position and advances the cursor,
// wrapping around at the end of the table.
func (c *Cursor) Next() string {
	w := c.table.At(c.pos).Word
	c.pos = (c.pos + 1) % c.table.Len()
	return w
}

// Pos returns the index of the word Next will return.
func (c *Cursor) Pos() int {
	return c.pos
}
