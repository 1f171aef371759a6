package monospace

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// Metrics measures words in multiples of a cell width.
//
// Metrics is safe for concurrent use.
type Metrics struct {
	em               float64
	mu               sync.Mutex
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
}

// NewMetrics creates metrics for monospace output. em is the width of a single
// cell. If it is zero, it will be set to 1, i.e. widths are given in cells.
func NewMetrics(em float64, context *uax11.Context) *Metrics {
	if em == 0 {
		em = 1
	}
	m := &Metrics{
		em:      em,
		context: context,
	}
	if m.context == nil {
		m.context = uax11.LatinContext
	}
	onGraphemes := grapheme.NewBreaker(1)
	m.graphemeSplitter = segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	return m
}

// Key identifies the metrics, to be used for caching measurement results.
func (m *Metrics) Key() string {
	return fmt.Sprintf("monospace:%g:%p", m.em, m.context)
}

// RoughWordWidth returns the number of cells word occupies, times em.
func (m *Metrics) RoughWordWidth(word string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graphemeSplitter.Init(strings.NewReader(word))
	cells := 0
	for m.graphemeSplitter.Next() {
		grphm := m.graphemeSplitter.Bytes()
		cells += uax11.Width(grphm, m.context)
	}
	tracer().Debugf("%q occupies %d cells", word, cells)
	return float64(cells) * m.em
}
