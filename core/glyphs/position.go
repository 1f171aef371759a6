package glyphs

import (
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/wordsiv/core"
)

// Position is a category for the placement of a glyph within a word.
type Position string

// Position categories, modeled on the isolated/initial/medial/final taxonomy of
// joining scripts.
const (
	Isol         Position = "isol"
	InitFina     Position = "init_fina"
	InitMediFina Position = "init_medi_fina"
	InitMedi     Position = "init_medi"
	MediFina     Position = "medi_fina"
	Medi         Position = "medi"
	Init         Position = "init"
	Fina         Position = "fina"
)

// Positions lists all known position categories.
var Positions = []Position{Isol, InitFina, InitMediFina, InitMedi, MediFina, Medi, Init, Fina}

// patterns maps a category to a pattern constructor. g is the quoted glyph,
// usable both as a literal and inside a character class.
var patterns = map[Position]func(g string) string{
	Isol:         func(g string) string { return `^` + g + `$` },
	InitFina:     func(g string) string { return `^` + g + `[^` + g + `]*` + g + `$` },
	InitMediFina: func(g string) string { return `^` + g + `.*` + g + `+.*` + g + `$` },
	InitMedi:     func(g string) string { return `^` + g + `.*` + g + `+.*[^` + g + `]$` },
	MediFina:     func(g string) string { return `^.+` + g + `.*` + g + `$` },
	Medi:         func(g string) string { return `^[^` + g + `].*` + g + `+.*[^` + g + `]$` },
	Init:         func(g string) string { return `^` + g + `[^` + g + `]+$` },
	Fina:         func(g string) string { return `^[^` + g + `]+` + g + `$` },
}

// IsValid returns true if pos is one of the known categories.
func (pos Position) IsValid() bool {
	_, ok := patterns[pos]
	return ok
}

// ParsePosition returns the position category named s. Unknown names result
// in a configuration error.
func ParsePosition(s string) (Position, error) {
	pos := Position(s)
	if !pos.IsValid() {
		return "", core.WrapError(core.ErrConfiguration, core.ECONFIG,
			"unknown glyph position %q", s)
	}
	return pos, nil
}

type patternKey struct {
	glyph string
	pos   Position
}

var compiled sync.Map // patternKey -> *regexp.Regexp

func positionPattern(glyph string, pos Position) *regexp.Regexp {
	key := patternKey{glyph, pos}
	if re, ok := compiled.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	construct, ok := patterns[pos]
	if !ok {
		return nil
	}
	re := regexp.MustCompile(construct(regexp.QuoteMeta(glyph)))
	tracer().Debugf("compiled position pattern %s for %q: %s", pos, glyph, re)
	actual, _ := compiled.LoadOrStore(key, re)
	return actual.(*regexp.Regexp)
}

// HasPosition returns true if the occurrences of glyph within word match the
// position category pos. glyph has to be exactly one character. A word not
// containing glyph never matches, neither does an unknown category.
//
//     HasPosition("gag", "g", InitFina)      => true
//     HasPosition("gorilla", "g", InitFina)  => false
//
func HasPosition(word, glyph string, pos Position) bool {
	if utf8.RuneCountInString(glyph) != 1 {
		return false
	}
	re := positionPattern(glyph, pos)
	if re == nil {
		return false
	}
	return re.MatchString(word)
}
