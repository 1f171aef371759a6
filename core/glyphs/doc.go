/*
Package glyphs matches words against glyph repertoires.

A proofing text must not contain characters a font does not provide. Package
glyphs tests words for glyph availability and classifies where a required
glyph occurs within a word. The classification borrows the joining-form
terminology of connected scripts:

    isol            the word is exactly the glyph
    init            glyph at the start only
    medi            glyph in the interior only
    fina            glyph at the end only
    init_fina       glyph at both ends, none between
    init_medi       glyph at the start and in the interior, not at the end
    medi_fina       glyph in the interior and at the end
    init_medi_fina  glyph at the start, in the interior and at the end

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordsiv.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.glyphs")
}
