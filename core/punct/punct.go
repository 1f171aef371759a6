package punct

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/npillmayer/wordsiv/core/glyphs"
)

// Func assembles a sentence from a list of words. Implementations should draw
// randomness only from rnd, to keep output reproducible for a given seed.
type Func func(words []string, available string, rnd *rand.Rand, lang string) string

// Rules is a punctuation ruleset. Marks are weighted: a mark with weight 10 is
// drawn ten times as often as a mark with weight 1.
type Rules struct {
	EndMarks   map[string]int `yaml:"end"`        // sentence-final marks
	InnerMarks map[string]int `yaml:"inner"`      // marks following a non-final word
	InnerRate  float64        `yaml:"inner_rate"` // probability of an inner mark after a word
}

// Default is a ruleset fitting most Latin-script languages.
var Default = &Rules{
	EndMarks:   map[string]int{".": 100, "?": 10, "!": 5},
	InnerMarks: map[string]int{",": 20, ";": 2, ":": 1},
	InnerRate:  0.08,
}

// Assemble wraps words into a sentence. If fn is given, it is used to assemble
// the sentence. Otherwise rules (or Default, if rules are nil) are applied.
// Only marks whose characters are contained in available are used; an empty
// available string means every mark may be used.
func Assemble(words []string, available string, rnd *rand.Rand, lang string, rules *Rules, fn Func) string {
	if fn != nil {
		return fn(words, available, rnd, lang)
	}
	if rules == nil {
		rules = Default
	}
	return rules.Punctuate(words, available, rnd, lang)
}

// Punctuate joins words with single spaces, sprinkling in inner marks and
// closing with an end mark.
func (r *Rules) Punctuate(words []string, available string, rnd *rand.Rand, lang string) string {
	if len(words) == 0 {
		return ""
	}
	inner := newMarkChooser(r.InnerMarks, available)
	end := newMarkChooser(r.EndMarks, available)
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		if i < len(words)-1 && inner.total > 0 && rnd.Float64() < r.InnerRate {
			b.WriteString(inner.choose(rnd))
		}
	}
	if end.total > 0 {
		b.WriteString(end.choose(rnd))
	}
	tracer().Debugf("punctuated sentence for lang=%q: %q", lang, b.String())
	return b.String()
}

// markChooser draws marks by weight. Marks are kept sorted to make draws
// independent of map iteration order.
type markChooser struct {
	marks []string
	cum   []int
	total int
}

func newMarkChooser(weighted map[string]int, available string) markChooser {
	mc := markChooser{}
	for m, w := range weighted {
		if w > 0 && glyphs.HasGlyphs(m, available) {
			mc.marks = append(mc.marks, m)
		}
	}
	sort.Strings(mc.marks)
	for _, m := range mc.marks {
		mc.total += weighted[m]
		mc.cum = append(mc.cum, mc.total)
	}
	return mc
}

func (mc markChooser) choose(rnd *rand.Rand) string {
	x := rnd.Intn(mc.total)
	i := sort.SearchInts(mc.cum, x+1)
	return mc.marks[i]
}
