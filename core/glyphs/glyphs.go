package glyphs

import (
	"sort"
	"strings"
)

// HasGlyphs returns true if every character of word is contained in allowed.
// An empty allowed string means "unrestricted" and always returns true.
//
//     HasGlyphs("speaker", "sperk")   => false
//     HasGlyphs("speaker", "aekrps")  => true
//     HasGlyphs("dog,cat", "dogcat")  => false
//
func HasGlyphs(word, allowed string) bool {
	if allowed == "" {
		return true
	}
	for _, r := range word {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

// Set is a set of glyphs available in a target context, usually the character
// repertoire of a font. A Set which is not limited lets every word pass.
//
// The zero value is an unlimited set.
type Set struct {
	glyphs  string
	limited bool
	lookup  map[rune]struct{}
}

// NewSet creates a glyph set from a string of characters. Order and
// duplicates are irrelevant. An empty string results in an unlimited set.
func NewSet(glyphs string) Set {
	if glyphs == "" {
		return Set{}
	}
	lookup := make(map[rune]struct{}, len(glyphs))
	for _, r := range glyphs {
		lookup[r] = struct{}{}
	}
	runes := make([]rune, 0, len(lookup))
	for r := range lookup {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return Set{
		glyphs:  string(runes),
		limited: true,
		lookup:  lookup,
	}
}

// Unlimited returns a glyph set which does not restrict availability.
func Unlimited() Set {
	return Set{}
}

// Limited returns true if availability restriction is active.
func (s Set) Limited() bool {
	return s.limited
}

// String returns the glyphs of s in normalized order (sorted by code-point,
// without duplicates). Unlimited sets return "".
func (s Set) String() string {
	return s.glyphs
}

// Len returns the number of distinct glyphs in s, 0 for unlimited sets.
func (s Set) Len() int {
	return len(s.lookup)
}

// Contains returns true if r is available.
func (s Set) Contains(r rune) bool {
	if !s.limited {
		return true
	}
	_, ok := s.lookup[r]
	return ok
}

// Has returns true if every character of word is available.
func (s Set) Has(word string) bool {
	if !s.limited {
		return true
	}
	for _, r := range word {
		if _, ok := s.lookup[r]; !ok {
			return false
		}
	}
	return true
}
