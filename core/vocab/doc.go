/*
Package vocab holds vocabularies of words and their occurrence counts.

A Vocabulary owns raw word data, either given inline or read from a file.
The data is newline-delimited UTF-8 text, where every line is either a bare
word or a word followed by whitespace and an integer count:

    the	23135851162
    of	13151942776
    and	12997637966

The format is sniffed from the first line only. Bare word lists are assigned
a count of 1 for every word. Parsing results in a Table, an immutable
ordered sequence of word/count pairs, which is the input for filtering and
word generation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vocab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordsiv.vocab'.
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.vocab")
}
