/*
Package punct wraps word lists into punctuated sentences.

Sentence assembly is deliberately kept apart from word selection: a
vocabulary carries a set of punctuation Rules, and generation models hand
their word lists to Assemble. Clients wanting a different style may supply
their own Func.
*/
package punct

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordsiv.punct'.
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.punct")
}
