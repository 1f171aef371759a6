package filter

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/npillmayer/wordsiv/core/vocab"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Available keeps the words consisting of available glyphs only.
// An unlimited glyph set returns t itself.
func Available(t *vocab.Table, g glyphs.Set) *vocab.Table {
	if !g.Limited() {
		return t
	}
	return keep(t, func(wc vocab.WordCount) bool {
		return g.Has(wc.Word)
	})
}

// Upper rewrites every word to upper case and keeps the rewritten words
// consisting of available glyphs. Words which collapse onto the same
// rewritten form keep the first entry's count.
func Upper(t *vocab.Table, g glyphs.Set, lang language.Tag) *vocab.Table {
	return rewrite(t, g, cases.Upper(lang).String)
}

// Lower rewrites every word to lower case, see Upper.
func Lower(t *vocab.Table, g glyphs.Set, lang language.Tag) *vocab.Table {
	return rewrite(t, g, cases.Lower(lang).String)
}

// Capitalize rewrites every word to have an upper-case first letter and
// lower-case remaining letters, see Upper.
func Capitalize(t *vocab.Table, g glyphs.Set, lang language.Tag) *vocab.Table {
	return rewrite(t, g, capitalizer(lang))
}

// CapitalizeWord upper-cases the first letter of word and lower-cases the rest.
// Letters following a hyphen or apostrophe are lower-cased as well:
//
//     CapitalizeWord("well-KNOWN", language.English)  => "Well-known"
//
func CapitalizeWord(word string, lang language.Tag) string {
	return capitalizer(lang)(word)
}

// capitalizer returns a mapping which title-cases the first character of a
// word, together with any combining marks following it, and lower-cases the
// remainder. The mapping is not safe for concurrent use.
func capitalizer(lang language.Tag) func(string) string {
	title, lower := cases.Title(lang), cases.Lower(lang)
	return func(word string) string {
		if word == "" {
			return word
		}
		_, n := utf8.DecodeRuneInString(word)
		for n < len(word) {
			r, size := utf8.DecodeRuneInString(word[n:])
			if !unicode.Is(unicode.M, r) {
				break
			}
			n += size
		}
		return title.String(word[:n]) + lower.String(word[n:])
	}
}

func rewrite(t *vocab.Table, g glyphs.Set, mapping func(string) string) *vocab.Table {
	seen := linkedhashmap.New()
	for _, wc := range t.Entries() {
		w := mapping(wc.Word)
		if !g.Has(w) {
			continue
		}
		if _, found := seen.Get(w); found {
			continue
		}
		seen.Put(w, wc.Count)
	}
	entries := make([]vocab.WordCount, 0, seen.Size())
	it := seen.Iterator()
	for it.Next() {
		entries = append(entries, vocab.WordCount{
			Word:  it.Key().(string),
			Count: it.Value().(int),
		})
	}
	return vocab.NewTable(entries)
}

// Length keeps the words having between min and max characters, inclusive.
// Use math.MaxInt for "no upper bound".
func Length(t *vocab.Table, min, max int) *vocab.Table {
	if min <= 0 && max == math.MaxInt {
		return t
	}
	return keep(t, func(wc vocab.WordCount) bool {
		n := utf8.RuneCountInString(wc.Word)
		return n >= min && n <= max
	})
}

// Width keeps the words with a rough width between min and max, inclusive.
// Use math.Inf(1) for "no upper bound".
func Width(t *vocab.Table, m Metrics, min, max float64) *vocab.Table {
	return keep(t, func(wc vocab.WordCount) bool {
		w := m.RoughWordWidth(wc.Word)
		return w >= min && w <= max
	})
}

// Top keeps the first n entries of t. Tables are in order of frequency rank,
// so these are the n most frequent words.
func Top(t *vocab.Table, n int) *vocab.Table {
	if n >= t.Len() {
		return t
	}
	if n < 0 {
		n = 0
	}
	entries := t.Entries()
	return vocab.NewTable(entries[:n])
}

// Must keeps the words containing at least one of the glyphs in must.
func Must(t *vocab.Table, must string) *vocab.Table {
	if must == "" {
		return t
	}
	return keep(t, func(wc vocab.WordCount) bool {
		return strings.ContainsAny(wc.Word, must)
	})
}

// MustAll keeps the words containing every glyph in must.
func MustAll(t *vocab.Table, must string) *vocab.Table {
	if must == "" {
		return t
	}
	return keep(t, func(wc vocab.WordCount) bool {
		for _, r := range must {
			if !strings.ContainsRune(wc.Word, r) {
				return false
			}
		}
		return true
	})
}

// Positioned keeps the words where glyph occurs at position pos.
func Positioned(t *vocab.Table, glyph string, pos glyphs.Position) *vocab.Table {
	return keep(t, func(wc vocab.WordCount) bool {
		return glyphs.HasPosition(wc.Word, glyph, pos)
	})
}

func keep(t *vocab.Table, pred func(vocab.WordCount) bool) *vocab.Table {
	entries := make([]vocab.WordCount, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if wc := t.At(i); pred(wc) {
			entries = append(entries, wc)
		}
	}
	return vocab.NewTable(entries)
}
