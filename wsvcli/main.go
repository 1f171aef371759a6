/*
Command wsvcli is an interactive shell for creating proofing text.

Usage:

    wsvcli -data words.txt -lang en -font "Go Sans"
    wsvcli -vocab en.yaml -glyphs "HAMBURGEFONTSIVhamburgefontsiv"

At the prompt, enter commands like

    words 5
    set must g
    set position init
    sentence

Enter "help" for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/font"
	"github.com/npillmayer/wordsiv/core/font/monospace"
	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/npillmayer/wordsiv/core/locate/resources"
	"github.com/npillmayer/wordsiv/core/option"
	"github.com/npillmayer/wordsiv/core/vocab"
	"github.com/npillmayer/wordsiv/engine/filter"
	"github.com/npillmayer/wordsiv/engine/model"
	"github.com/pterm/pterm"
)

// tracer traces with key 'wordsiv.cli'
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.wordsiv.cli":    "Info",
		"trace.wordsiv.vocab":  "Info",
		"trace.wordsiv.filter": "Error",
		"trace.wordsiv.model":  "Error",
		"trace.wordsiv.font":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	manifest := flag.String("vocab", "", "Vocabulary manifest (YAML)")
	datafile := flag.String("data", "", "Vocabulary data file, used if no manifest is given")
	lang := flag.String("lang", "en", "Language of the vocabulary data file")
	unicase := flag.Bool("unicase", false, "Vocabulary language does not distinguish letter case")
	fontname := flag.String("font", "", "Font to proof (file or system font name)")
	mono := flag.Float64("mono", 0, "Measure widths in monospace cells of this size, if no font is given")
	available := flag.String("glyphs", "", "Available glyphs, overrides the font's repertoire")
	seed := flag.Int("seed", -1, "Seed for random text (negative for time-based)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)
	pterm.Info.Println("Welcome to the wordsiv CLI")
	//
	src, err := loadVocabulary(*manifest, *datafile, *lang, !*unicase)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	repl, err := readline.New("wsv > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, src: src}
	if *seed >= 0 {
		intp.conf.Seed = option.SomeInt(*seed)
	}
	if err := intp.setupFont(*fontname, *mono, *available); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.random = model.NewRandom(src, intp.conf)
	intp.sequential = model.NewSequential(src, intp.conf)
	//
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadVocabulary(manifest, datafile, lang string, bicameral bool) (*vocab.Vocabulary, error) {
	if manifest != "" {
		return vocab.LoadManifest(manifest)
	}
	if datafile == "" {
		return nil, core.Error(core.ECONFIG, "either -vocab or -data is required")
	}
	return vocab.New(vocab.Config{
		Lang:      lang,
		Bicameral: bicameral,
		DataFile:  datafile,
	})
}

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	src        model.Source
	conf       model.Config
	fontname   string
	random     *model.Random
	sequential *model.Sequential
	settings   settings
}

// setupFont prepares glyph availability and metrics. A glyphs string given on
// the command line takes precedence over the font's repertoire.
func (intp *Intp) setupFont(name string, em float64, available string) error {
	if name == "" && em > 0 {
		intp.fontname = fmt.Sprintf("monospace(%g)", em)
		intp.conf.Metrics = monospace.NewMetrics(em, nil)
		intp.conf.Glyphs = glyphs.NewSet(available)
		return nil
	}
	if name == "" {
		intp.conf.Glyphs = glyphs.NewSet(available)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	f, err := resources.ResolveFont(name).Await(ctx)
	if err != nil && f == nil {
		return err
	} else if err != nil {
		pterm.Error.Println(core.UserMessage(err))
	}
	metrics, err := font.NewMetrics(f)
	if err != nil {
		return err
	}
	intp.fontname = f.Fontname
	intp.conf.Metrics = metrics
	if available == "" {
		available = metrics.AvailableGlyphs()
	}
	intp.conf.Glyphs = glyphs.NewSet(available)
	tracer().Infof("font %s provides %d glyphs", f.Fontname, intp.conf.Glyphs.Len())
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Debugf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd *Command) (stop bool, err error) {
	tracer().Debugf("cmd = %v", cmd)
	f, ok := commandFn[cmd.code]
	if !ok {
		return false, fmt.Errorf("unknown command code: %d", cmd.code)
	}
	return f(intp, cmd)
}

var _ filter.Metrics = (*font.Metrics)(nil)
var _ filter.Metrics = (*monospace.Metrics)(nil)
