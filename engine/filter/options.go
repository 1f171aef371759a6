package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/npillmayer/wordsiv/core/option"
	"golang.org/x/text/language"
)

// DefaultWidthTolerance is used for exact-width requests if no tolerance is given.
const DefaultWidthTolerance = 0.05

// Metrics measures the rough rendered width of a word.
type Metrics interface {
	RoughWordWidth(word string) float64
}

// Options is a filter request. The zero value selects every available word.
//
// Options values are comparable and are used for memoization.
type Options struct {
	Upper      bool // rewrite words to upper case
	Lower      bool // rewrite words to lower case
	Capitalize bool // upper-case first letter, lower-case rest

	MinLength option.Int
	MaxLength option.Int
	Length    option.Int // exact length, overrides MinLength and MaxLength

	MinWidth       option.Float
	MaxWidth       option.Float
	Width          option.Float // approximate width, overrides MinWidth and MaxWidth
	WidthTolerance option.Float // tolerance for Width, default DefaultWidthTolerance

	Top option.Int // keep only the n most frequent words

	Must     string          // required glyphs
	Position glyphs.Position // where the (single) required glyph has to occur
	MustAll  bool            // require all of Must instead of any of them

	Lang language.Tag // language for case mapping
}

// CaseMapping returns true if one of the case options is set.
func (o Options) CaseMapping() bool {
	return o.Upper || o.Lower || o.Capitalize
}

// WithoutCase returns a copy of o with all case options cleared.
func (o Options) WithoutCase() Options {
	o.Upper, o.Lower, o.Capitalize = false, false, false
	return o
}

func (o Options) lengthBounds() (int, int) {
	if !o.Length.IsNone() {
		return o.Length.Unwrap(), o.Length.Unwrap()
	}
	return o.MinLength.UnwrapOr(0), o.MaxLength.UnwrapOr(math.MaxInt)
}

func (o Options) widthBounds() (float64, float64) {
	if !o.Width.IsNone() {
		w := o.Width.Unwrap()
		tol := o.WidthTolerance.UnwrapOr(DefaultWidthTolerance)
		if tol < 0 {
			tol = -tol
		}
		return w - tol, w + tol
	}
	return o.MinWidth.UnwrapOr(0), o.MaxWidth.UnwrapOr(math.Inf(1))
}

func (o Options) wantsLength() bool {
	return option.AnySome(o.MinLength, o.MaxLength, o.Length)
}

func (o Options) wantsWidth() bool {
	return option.AnySome(o.MinWidth, o.MaxWidth, o.Width)
}

func (o Options) wantsTop() bool {
	return !o.Top.IsNone() && o.Top.Unwrap() > 0
}

// validate checks for requests which can never be served.
func (o Options) validate(m Metrics) error {
	if o.wantsWidth() && m == nil {
		return core.WrapError(core.ErrConfiguration, core.ECONFIG,
			"width filter needs font metrics, but metrics are unavailable")
	}
	if o.Must != "" && o.Position != "" {
		if !o.Position.IsValid() {
			return core.WrapError(core.ErrConfiguration, core.ECONFIG,
				"unknown glyph position %q", o.Position)
		}
		if len([]rune(o.Must)) != 1 {
			return core.WrapError(core.ErrConfiguration, core.ECONFIG,
				"position %s needs exactly one required glyph, have %q", o.Position, o.Must)
		}
	}
	return nil
}

// String returns a canonical representation of o, used as a memoization key.
func (o Options) String() string {
	var b strings.Builder
	switch {
	case o.Upper:
		b.WriteString("case=upper")
	case o.Lower:
		b.WriteString("case=lower")
	case o.Capitalize:
		b.WriteString("case=cap")
	default:
		b.WriteString("case=none")
	}
	if o.CaseMapping() {
		fmt.Fprintf(&b, ",lang=%s", o.Lang)
	}
	if o.wantsLength() {
		lo, hi := o.lengthBounds()
		fmt.Fprintf(&b, ",len=[%d,%d]", lo, hi)
	}
	if o.wantsWidth() {
		lo, hi := o.widthBounds()
		fmt.Fprintf(&b, ",width=[%g,%g]", lo, hi)
	}
	if o.wantsTop() {
		fmt.Fprintf(&b, ",top=%d", o.Top.Unwrap())
	}
	if o.Must != "" {
		fmt.Fprintf(&b, ",must=%q,pos=%s,all=%v", o.Must, o.Position, o.MustAll)
	}
	return b.String()
}

// noWords creates the error for an empty result, naming the glyph requirements
// if there were any.
func noWords(o Options) error {
	switch {
	case o.Must == "":
		return core.ErrorWithCode(core.ErrNoWords, core.ENOWORDS)
	case o.Position != "":
		return core.WrapError(core.ErrNoWords, core.ENOWORDS, "must=%q, position=%s", o.Must, o.Position)
	}
	return core.WrapError(core.ErrNoWords, core.ENOWORDS, "must=%q", o.Must)
}
