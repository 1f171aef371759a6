package font

import (
	"errors"
	"sync"
	"unicode/utf16"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics measures words set in a scalable font.
//
// Metrics is safe for concurrent use.
type Metrics struct {
	font      *ScalableFont
	upem      sfnt.Units
	mu        sync.Mutex
	buf       sfnt.Buffer
	widths    map[rune]float64
	repertory sync.Once
	glyphs    string
}

// NewMetrics creates a metrics object for a font.
func NewMetrics(f *ScalableFont) (*Metrics, error) {
	if f == nil || f.SFNT == nil {
		return nil, errors.New("metrics need a parsed font")
	}
	return &Metrics{
		font:   f,
		upem:   f.SFNT.UnitsPerEm(),
		widths: make(map[rune]float64),
	}, nil
}

// Font returns the font these metrics are taken from.
func (m *Metrics) Font() *ScalableFont {
	return m.font
}

// UnitsPerEm returns the number of design units per em of the font.
func (m *Metrics) UnitsPerEm() int {
	return int(m.upem)
}

// Key identifies the metrics, to be used for caching measurement results.
func (m *Metrics) Key() string {
	return "font:" + NormalizeFontname(m.font.Fontname) + ":" + m.font.Filepath
}

// RoughWordWidth returns the sum of the advance widths of the glyphs for the
// characters of word, in em. Characters missing in the font
// are measured with the width of the .notdef glyph. Kerning and shaping are
// not applied.
func (m *Metrics) RoughWordWidth(word string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var w float64
	for _, r := range word {
		w += m.runeWidth(r)
	}
	return w
}

// runeWidth must be called with m.mu held.
func (m *Metrics) runeWidth(r rune) float64 {
	if w, ok := m.widths[r]; ok {
		return w
	}
	gid, err := m.font.SFNT.GlyphIndex(&m.buf, r)
	if err != nil {
		gid = 0
	}
	// with ppem = units-per-em the advance is expressed in design units
	adv, err := m.font.SFNT.GlyphAdvance(&m.buf, gid, fixed.Int26_6(m.upem)<<6, xfont.HintingNone)
	if err != nil {
		tracer().Errorf("cannot get advance for %q in %s: %v", r, m.font.Fontname, err)
		adv = 0
	}
	w := float64(adv) / 64 / float64(m.upem)
	m.widths[r] = w
	return w
}

// AvailableGlyphs returns all characters of the Basic Multilingual Plane for
// which the font provides a glyph, excluding control characters and space.
func (m *Metrics) AvailableGlyphs() string {
	m.repertory.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		runes := make([]rune, 0, 512)
		for r := rune(0x21); r <= 0xFFFF; r++ {
			if utf16.IsSurrogate(r) || (r >= 0x7F && r < 0xA0) {
				continue
			}
			if gid, err := m.font.SFNT.GlyphIndex(&m.buf, r); err == nil && gid != 0 {
				runes = append(runes, r)
			}
		}
		m.glyphs = string(runes)
		tracer().Infof("font %s provides %d glyphs", m.font.Fontname, len(runes))
	})
	return m.glyphs
}
