/*
Package filter narrows a frequency table down to the words suitable for a
proofing request.

Filtering happens in stages, always in the same order:

    1. case       upper-case, lower-case or capitalized rewriting (at most one),
                  otherwise glyph availability only
    2. length     word length in characters
    3. width      rough rendered width, needs font metrics
    4. top        the n most frequent words
    5. must       words containing required glyphs, optionally at a position

Every stage is a pure function from table to table. A Pipeline memoizes the
stages and the complete requests, so repeated requests for the same
vocabulary are cheap. Tables are immutable, which makes sharing memoized
results between callers safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package filter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordsiv.filter'.
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.filter")
}
