/*
Package model generates proofing text from a vocabulary.

Two generation strategies are available, both implementing SentenceModel:

Random draws words at random from a filtered vocabulary, either weighted by
frequency (the default) or uniformly. Sentences are assembled with
punctuation suitable for the vocabulary's language.

Sequential walks through a filtered vocabulary in table order, wrapping
around at the end. It is useful for exhaustive proofing, e.g. for showing
every word of a given length.

Models filter their vocabulary per call, using a filter.Pipeline, so filter
options may change from call to call without any setup cost apart from the
first use of a filter combination.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package model

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordsiv.model'.
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.model")
}
