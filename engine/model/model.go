package model

import (
	"strings"

	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/npillmayer/wordsiv/core/option"
	"github.com/npillmayer/wordsiv/core/punct"
	"github.com/npillmayer/wordsiv/core/vocab"
	"github.com/npillmayer/wordsiv/engine/filter"
	"golang.org/x/text/language"
)

// Defaults for the number of words per sentence.
const (
	DefaultMinWords      = 7
	DefaultMaxWords      = 20
	DefaultSequenceWords = 10
	DefaultParagraphLen  = 5
)

// Source is a provider of vocabulary data. *vocab.Vocabulary is a Source.
type Source interface {
	FrequencyTable() (*vocab.Table, error)
	Lang() string
	Tag() language.Tag
	Bicameral() bool
	Punctuation() *punct.Rules
}

var _ Source = (*vocab.Vocabulary)(nil)

// Config holds the environment of a model.
type Config struct {
	Glyphs   glyphs.Set       // glyphs available; zero value means unrestricted
	Metrics  filter.Metrics   // font metrics for width filtering, may be nil
	Seed     option.Int       // seed for the random source; unset means time-based
	Pipeline *filter.Pipeline // nil means filter.Default()
}

// WordOptions configures the draw of single words.
type WordOptions struct {
	Uniform bool           // draw uniformly without replacement instead of by frequency
	Filter  filter.Options // restrict the vocabulary
}

// WordsOptions configures the generation of word lists.
type WordsOptions struct {
	NumWords int  // number of words; 0 means random between MinWords and MaxWords
	MinWords int  // 0 means DefaultMinWords
	MaxWords int  // 0 means DefaultMaxWords
	CapFirst bool // capitalize the first word
	Uniform  bool
	Filter   filter.Options
}

// SentenceOptions configures the generation of sentences.
type SentenceOptions struct {
	NumWords    int // number of words; 0 means random between MinWords and MaxWords
	MinWords    int
	MaxWords    int
	KeepCase    bool       // do not capitalize the first word
	Punctuation punct.Func // custom sentence assembly, overrides the vocabulary's rules; may call back into the model
	Uniform     bool
	Filter      filter.Options
}

func (o SentenceOptions) words() WordsOptions {
	return WordsOptions{
		NumWords: o.NumWords,
		MinWords: o.MinWords,
		MaxWords: o.MaxWords,
		CapFirst: !o.KeepCase,
		Uniform:  o.Uniform,
		Filter:   o.Filter,
	}
}

// SentenceModel is the common interface of all text generation strategies.
type SentenceModel interface {
	Words(WordsOptions) ([]string, error)
	Sentence(SentenceOptions) (string, error)
}

// Kind selects a generation strategy.
type Kind string

// Generation strategies.
const (
	RandomKind     Kind = "random"
	SequentialKind Kind = "sequential"
)

// New creates a model of the given kind.
func New(kind Kind, src Source, conf Config) (SentenceModel, error) {
	switch kind {
	case RandomKind, "":
		return NewRandom(src, conf), nil
	case SequentialKind:
		return NewSequential(src, conf), nil
	}
	return nil, core.WrapError(core.ErrConfiguration, core.ECONFIG, "unknown model kind %q", kind)
}

// Paragraph joins n sentences of m with single spaces. n ≤ 0 means
// DefaultParagraphLen sentences.
func Paragraph(m SentenceModel, n int, o SentenceOptions) (string, error) {
	if n <= 0 {
		n = DefaultParagraphLen
	}
	sentences := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := m.Sentence(o)
		if err != nil {
			return "", err
		}
		sentences = append(sentences, s)
	}
	return strings.Join(sentences, " "), nil
}

// base is the part shared by all models: access to filtered vocabulary data.
type base struct {
	src  Source
	conf Config
}

func (b base) pipeline() *filter.Pipeline {
	if b.conf.Pipeline == nil {
		return filter.Default()
	}
	return b.conf.Pipeline
}

// filtered returns the vocabulary table restricted by o.
func (b base) filtered(o filter.Options) (*vocab.Table, error) {
	table, err := b.src.FrequencyTable()
	if err != nil {
		return nil, err
	}
	if o.CaseMapping() && !b.src.Bicameral() {
		tracer().Debugf("vocabulary for %q is not bicameral, ignoring case options", b.src.Lang())
		o = o.WithoutCase()
	}
	o.Lang = b.src.Tag()
	return b.pipeline().Filter(table, b.conf.Glyphs, b.conf.Metrics, o)
}

// capitalize upper-cases the first letter of the first word, if the
// vocabulary's script has letter case and the result is available.
func (b base) capitalize(words []string) {
	if len(words) == 0 || !b.src.Bicameral() {
		return
	}
	w := filter.CapitalizeWord(words[0], b.src.Tag())
	if !b.conf.Glyphs.Has(w) {
		tracer().Debugf("cannot capitalize %q, glyphs not available", words[0])
		return
	}
	words[0] = w
}
