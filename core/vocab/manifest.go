package vocab

import (
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/punct"
	"gopkg.in/yaml.v3"
)

// Manifest describes a vocabulary in YAML format, as shipped alongside
// vocabulary data files:
//
//     lang: en
//     bicameral: true
//     data_file: en-words.tsv
//     punctuation:
//       end: { ".": 100, "?": 10 }
//       inner: { ",": 20 }
//       inner_rate: 0.08
//     meta:
//       source: wikipedia
//
type Manifest struct {
	Lang        string                 `yaml:"lang"`
	Bicameral   bool                   `yaml:"bicameral"`
	Data        string                 `yaml:"data"`
	DataFile    string                 `yaml:"data_file"`
	Punctuation *punct.Rules           `yaml:"punctuation"`
	Meta        map[string]interface{} `yaml:"meta"`
}

// LoadManifest reads a vocabulary manifest from a file. A relative data file
// is resolved against the manifest's directory.
func LoadManifest(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open vocabulary manifest %s", path)
	}
	defer f.Close()
	return ParseManifest(f, filepath.Dir(path))
}

// ParseManifest reads a vocabulary manifest. A relative data file is resolved
// against baseDir.
func ParseManifest(r io.Reader, baseDir string) (*Vocabulary, error) {
	m := Manifest{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode vocabulary manifest")
	}
	tracer().Debugf("vocabulary manifest for [%s], data file = %q", m.Lang, m.DataFile)
	conf := Config{
		Lang:        m.Lang,
		Bicameral:   m.Bicameral,
		Punctuation: m.Punctuation,
		Data:        m.Data,
		DataFile:    m.DataFile,
		Meta:        m.Meta,
	}
	if conf.DataFile != "" && !filepath.IsAbs(conf.DataFile) {
		conf.DataFile = filepath.Join(baseDir, conf.DataFile)
	}
	return New(conf)
}
