package model

import (
	"math/rand"
	"sync"
	"time"

	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/punct"
	"github.com/npillmayer/wordsiv/core/vocab"
)

// Random is a model drawing words at random.
//
// Random is safe for concurrent use. Output is reproducible for a fixed seed
// only if calls happen in a fixed order.
type Random struct {
	base
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ SentenceModel = (*Random)(nil)

// NewRandom creates a random model for a vocabulary source.
func NewRandom(src Source, conf Config) *Random {
	seed := int64(conf.Seed.UnwrapOr(0))
	if conf.Seed.IsNone() {
		seed = time.Now().UnixNano()
	}
	return &Random{
		base: base{src: src, conf: conf},
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Word draws a single word.
func (m *Random) Word(o WordOptions) (string, error) {
	words, err := m.Draw(1, o)
	if err != nil {
		return "", err
	}
	return words[0], nil
}

// Draw draws count words. By default words are drawn with replacement,
// weighted by their frequency count. With o.Uniform set, words are drawn
// without replacement, every word having the same chance. If the filtered
// vocabulary has fewer words than requested, Draw returns an error with code
// core.EINSUFFICIENT.
func (m *Random) Draw(count int, o WordOptions) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	table, err := m.filtered(o.Filter)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.Uniform {
		return m.uniform(table, count)
	}
	return m.weighted(table, count), nil
}

func (m *Random) uniform(table *vocab.Table, count int) ([]string, error) {
	distinct := distinctWords(table)
	if count > len(distinct) {
		return nil, core.WrapError(core.ErrInsufficientVocabulary, core.EINSUFFICIENT,
			"cannot draw %d distinct words from %d", count, len(distinct))
	}
	if count == 1 {
		return []string{distinct[m.rnd.Intn(len(distinct))]}, nil
	}
	words := make([]string, count)
	for i, j := range m.rnd.Perm(len(distinct))[:count] {
		words[i] = distinct[j]
	}
	return words, nil
}

// distinctWords returns the words of table without duplicates, in order of
// first occurrence.
func distinctWords(table *vocab.Table) []string {
	seen := make(map[string]struct{}, table.Len())
	words := make([]string, 0, table.Len())
	for _, w := range table.Words() {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func (m *Random) weighted(table *vocab.Table, count int) []string {
	words := make([]string, count)
	total := table.TotalCount()
	if total == 0 { // no weights, every word is equally likely
		tracer().Debugf("table has no positive counts, drawing uniformly")
		for i := range words {
			words[i] = table.At(m.rnd.Intn(table.Len())).Word
		}
		return words
	}
	for i := range words {
		x := m.rnd.Float64() * float64(total)
		words[i] = table.At(table.SearchWeight(x)).Word
	}
	return words
}

// Words draws a list of words. If o.NumWords is 0, the number of words is
// chosen at random between o.MinWords and o.MaxWords.
func (m *Random) Words(o WordsOptions) ([]string, error) {
	n := o.NumWords
	if n <= 0 {
		n = m.numWords(o.MinWords, o.MaxWords)
	}
	words, err := m.Draw(n, WordOptions{Uniform: o.Uniform, Filter: o.Filter})
	if err != nil {
		return nil, err
	}
	if o.CapFirst {
		m.capitalize(words)
	}
	return words, nil
}

func (m *Random) numWords(min, max int) int {
	if min <= 0 {
		min = DefaultMinWords
	}
	if max <= 0 {
		max = DefaultMaxWords
	}
	if max < min {
		max = min
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return min + m.rnd.Intn(max-min+1)
}

// Sentence creates a sentence of random words. The first word is capitalized
// unless o.KeepCase is set. Punctuation follows the vocabulary's rules, or
// o.Punctuation if given. o.Punctuation is called without holding the model's
// lock and receives a random source of its own, seeded from the model's.
func (m *Random) Sentence(o SentenceOptions) (string, error) {
	words, err := m.Words(o.words())
	if err != nil {
		return "", err
	}
	if o.Punctuation != nil {
		m.mu.Lock()
		rnd := rand.New(rand.NewSource(m.rnd.Int63()))
		m.mu.Unlock()
		return o.Punctuation(words, m.conf.Glyphs.String(), rnd, m.src.Lang()), nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return punct.Assemble(words, m.conf.Glyphs.String(), m.rnd, m.src.Lang(),
		m.src.Punctuation(), nil), nil
}
