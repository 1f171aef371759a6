/*
Package font loads fonts and measures words set in them.

Generating proofing text needs two things from a font: the repertoire of
characters it is able to display, and an approximate width for a word set
in it. Both are taken from the font's cmap and hmtx tables, using the SFNT
parser of golang.org/x/image. Widths are given in em and ignore kerning and
shaping, which is good enough to select words of a given length on a line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'wordsiv.font'.
func tracer() tracing.Trace {
	return tracing.Select("wordsiv.font")
}

// ScalableFont is a parsed OpenType font together with its binary data.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry holds loaded fonts and their metrics, keyed by normalized font name.
type Registry struct {
	sync.Mutex
	fonts   map[string]*ScalableFont
	metrics map[string]*Metrics
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:   make(map[string]*ScalableFont),
		metrics: make(map[string]*Metrics),
	}
}

// StoreFont pushes a font into the registry, using the normalized font name
// as key.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// Font returns a font previously stored under name.
func (fr *Registry) Font(name string) (*ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[NormalizeFontname(name)]
	return f, ok
}

// Metrics returns the metrics for a font previously stored under name.
// Metrics are created on first request and cached.
func (fr *Registry) Metrics(name string) (*Metrics, error) {
	fname := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if m, ok := fr.metrics[fname]; ok {
		tracer().Debugf("registry found metrics for %s", fname)
		return m, nil
	}
	f, ok := fr.fonts[fname]
	if !ok {
		tracer().Infof("registry does not contain font %s", name)
		return nil, os.ErrNotExist
	}
	m, err := NewMetrics(f)
	if err != nil {
		return nil, err
	}
	fr.metrics[fname] = m
	return m, nil
}

// NormalizeFontname creates a registry key from a font name or font file name.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
