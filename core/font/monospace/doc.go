/*
Package monospace measures words for monospace output.

Terminal and plain-text proofs do not need an OpenType font to measure
words: every grapheme occupies one or two cells, as defined by Unicode
UAX#11 (East Asian Width).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordsiv.font'.
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.font")
}
