package vocab

import (
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/punct"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Config collects the metadata and the data source of a vocabulary.
// Exactly one of Data and DataFile has to be set.
type Config struct {
	Lang        string                 // BCP 47 language tag, e.g. "en"
	Bicameral   bool                   // does the language distinguish upper and lower case?
	Punctuation *punct.Rules           // rules for punctuating sentences; nil for default rules
	Data        string                 // inline vocabulary data
	DataFile    string                 // path to a file containing the vocabulary data
	FS          fs.FS                  // if set, DataFile is resolved within FS
	Meta        map[string]interface{} // free-form metadata
}

// Vocabulary is a collection of words and occurrence counts, together with
// metadata for filtering and punctuating.
//
// Raw data is read lazily on first access and cached. A vocabulary either
// produces a well-formed table or fails permanently.
type Vocabulary struct {
	lang        string
	tag         language.Tag
	bicameral   bool
	punctuation *punct.Rules
	meta        map[string]interface{}
	data        string
	dataFile    string
	fsys        fs.FS
	rawOnce     sync.Once
	raw         string
	rawErr      error
	tableOnce   sync.Once
	table       *Table
	tableErr    error
}

// New creates a vocabulary. It fails if neither or both of conf.Data and
// conf.DataFile are given.
func New(conf Config) (*Vocabulary, error) {
	if conf.Data != "" && conf.DataFile != "" {
		return nil, core.WrapError(core.ErrConfiguration, core.ECONFIG,
			"cannot specify both inline data and a data file")
	} else if conf.Data == "" && conf.DataFile == "" {
		return nil, core.WrapError(core.ErrConfiguration, core.ECONFIG,
			"must specify either inline data or a data file")
	}
	tag, err := language.Parse(conf.Lang)
	if err != nil {
		tracer().Infof("vocabulary language %q is not a valid BCP 47 tag, using und", conf.Lang)
		tag = language.Und
	}
	return &Vocabulary{
		lang:        conf.Lang,
		tag:         tag,
		bicameral:   conf.Bicameral,
		punctuation: conf.Punctuation,
		meta:        conf.Meta,
		data:        conf.Data,
		dataFile:    conf.DataFile,
		fsys:        conf.FS,
	}, nil
}

// Lang returns the language of the vocabulary, as configured.
func (v *Vocabulary) Lang() string {
	return v.lang
}

// Tag returns the language of the vocabulary as a language tag.
// Unparsable languages result in language.Und.
func (v *Vocabulary) Tag() language.Tag {
	return v.tag
}

// Bicameral returns true if the vocabulary's language distinguishes
// upper- and lowercase letters.
func (v *Vocabulary) Bicameral() bool {
	return v.bicameral
}

// Punctuation returns the punctuation rules of the vocabulary, or nil.
func (v *Vocabulary) Punctuation() *punct.Rules {
	return v.punctuation
}

// Meta returns the metadata entry for key.
func (v *Vocabulary) Meta(key string) (interface{}, bool) {
	value, ok := v.meta[key]
	return value, ok
}

// RawData returns the vocabulary data, either inline data or the content of
// the data file. Data is normalized to NFC.
func (v *Vocabulary) RawData() (string, error) {
	v.rawOnce.Do(func() {
		var data string
		if v.data != "" {
			data = v.data
		} else if v.fsys != nil {
			var bytez []byte
			if bytez, v.rawErr = fs.ReadFile(v.fsys, v.dataFile); v.rawErr != nil {
				v.rawErr = core.WrapError(v.rawErr, core.EMISSING, "cannot read vocabulary file %s", v.dataFile)
				return
			}
			data = string(bytez)
		} else if data, v.rawErr = readFile(v.dataFile); v.rawErr != nil {
			return
		}
		if strings.TrimSpace(data) == "" {
			source := "inline data"
			if v.dataFile != "" {
				source = v.dataFile
			}
			v.rawErr = core.WrapError(core.ErrVocabEmpty, core.EEMPTY, "no data found in %s", source)
			return
		}
		v.raw = norm.NFC.String(data)
	})
	return v.raw, v.rawErr
}

// FrequencyTable returns the vocabulary's words and counts.
func (v *Vocabulary) FrequencyTable() (*Table, error) {
	v.tableOnce.Do(func() {
		var data string
		if data, v.tableErr = v.RawData(); v.tableErr != nil {
			return
		}
		v.table, v.tableErr = ParseTable(data)
		if v.tableErr == nil {
			tracer().Infof("vocabulary [%s] has %d entries", v.lang, v.table.Len())
		}
	})
	return v.table, v.tableErr
}

// --- File cache ------------------------------------------------------------

// Vocabulary files are read once per process and never re-read.
var fileCache sync.Map // path -> string

func readFile(path string) (string, error) {
	if data, ok := fileCache.Load(path); ok {
		return data.(string), nil
	}
	bytez, err := os.ReadFile(path)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot read vocabulary file %s", path)
	}
	tracer().Debugf("read vocabulary file %s (%d bytes)", path, len(bytez))
	data, _ := fileCache.LoadOrStore(path, string(bytez))
	return data.(string), nil
}
