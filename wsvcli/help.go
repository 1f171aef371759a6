package main

import (
	"strings"

	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, cmd *Command) (bool, error) {
	topic := ""
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	} else if cmd.name != "help" {
		pterm.Error.Printf("unknown command: %s\n", cmd.name)
	}
	help(topic)
	return false, nil
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "set", "unset", "options":
		pterm.Info.Println("Options")
		pterm.Println(`
	set upper | lower | cap        rewrite words (at most one applies)
	set minlen | maxlen | len <n>  word length in characters
	set minwidth | maxwidth <w>    rough width in em (-font) or cells (-mono)
	set width <w>                  width within tolerance, e.g. 2.5 (em)
	set tolerance <t>              tolerance for width (default 0.05 em)
	set top <n>                    draw from the n most frequent words only
	set must <glyphs>              words must contain one of the glyphs
	set mustall                    words must contain all of the glyphs
	set position <pos>             where the single must-glyph has to occur
	set uniform                    draw uniformly instead of by frequency
	set keepcase                   do not capitalize sentences
	unset <option> ...             clear options, all of them if none given
	`)
	case "position", "positions":
		pterm.Info.Println("Glyph positions")
		names := make([]string, len(glyphs.Positions))
		for i, pos := range glyphs.Positions {
			names[i] = string(pos)
		}
		pterm.Println("\t" + strings.Join(names, ", "))
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	word           a single random word
	words [n]      n random words (7 to 20 if n is missing)
	sentence [n]   a random sentence
	para [n]       a paragraph of n sentences (5 if n is missing)
	seq [n]        the next n words in vocabulary order (10 if n is missing)
	set, unset     change options, see "help set"
	show           show current options
	quit           leave the CLI
	`)
	}
}
