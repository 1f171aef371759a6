package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordsiv/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNeedsExactlyOneSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	_, err := New(Config{Lang: "en", Bicameral: true})
	assert.True(t, errors.Is(err, core.ErrConfiguration), "neither data nor file should fail")
	_, err = New(Config{Lang: "en", Data: "duck", DataFile: "words.txt"})
	assert.True(t, errors.Is(err, core.ErrConfiguration), "both data and file should fail")
	assert.Equal(t, core.ECONFIG, core.Code(err))
	v, err := New(Config{Lang: "en", Bicameral: true, Data: "duck"})
	require.NoError(t, err)
	assert.Equal(t, "en", v.Lang())
	assert.True(t, v.Bicameral())
	assert.Equal(t, "en", v.Tag().String())
}

func TestCountedData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	v, err := New(Config{Lang: "en", Data: "the\t23\nof\t13\nand 12\n"})
	require.NoError(t, err)
	table, err := v.FrequencyTable()
	require.NoError(t, err)
	want := []WordCount{{"the", 23}, {"of", 13}, {"and", 12}}
	if diff := cmp.Diff(want, table.Entries()); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestBareWordList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	v, err := New(Config{Lang: "de", Data: "Straße\n\nHaus\r\nBaum\n"})
	require.NoError(t, err)
	table, err := v.FrequencyTable()
	require.NoError(t, err)
	want := []WordCount{{"Straße", 1}, {"Haus", 1}, {"Baum", 1}}
	if diff := cmp.Diff(want, table.Entries()); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripBareAndCounted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	bare, err := ParseTable("koala\ncobra\nemu")
	require.NoError(t, err)
	counted, err := ParseTable("koala\t1\ncobra\t1\nemu\t1")
	require.NoError(t, err)
	assert.True(t, bare.Equal(counted), "bare and counted tables should be identical")
	assert.Equal(t, bare.Fingerprint(), counted.Fingerprint())
}

func TestFormatErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	for _, data := range []string{
		"dog,cat\t12\n",
		"42\n",
		"word\tmany\n",
		"two words here\n",
	} {
		_, err := ParseTable(data)
		assert.True(t, errors.Is(err, core.ErrVocabFormat), "expected format error for %q", data)
		assert.Equal(t, core.EFORMAT, core.Code(err))
	}
	// later lines are not re-verified against the word pattern
	table, err := ParseTable("duck\t1\nd0g\t2\n")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	// ... but a count is required to build an entry
	_, err = ParseTable("duck\t1\ndog\n")
	assert.True(t, errors.Is(err, core.ErrVocabFormat))
}

func TestEmptyData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"empty.txt": &fstest.MapFile{Data: []byte("  \n\n")},
	}
	v, err := New(Config{Lang: "en", DataFile: "empty.txt", FS: fsys})
	require.NoError(t, err)
	_, err = v.RawData()
	assert.True(t, errors.Is(err, core.ErrVocabEmpty))
	_, err = v.FrequencyTable()
	assert.Equal(t, core.EEMPTY, core.Code(err), "error should be permanent")
}

func TestDataFileIsCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte("koala\t235\ncobra\t123\n"), 0644))
	v1, err := New(Config{Lang: "en", DataFile: path})
	require.NoError(t, err)
	t1, err := v1.FrequencyTable()
	require.NoError(t, err)
	//
	require.NoError(t, os.WriteFile(path, []byte("changed\t1\n"), 0644))
	v2, err := New(Config{Lang: "en", DataFile: path})
	require.NoError(t, err)
	t2, err := v2.FrequencyTable()
	require.NoError(t, err)
	assert.True(t, t1.Equal(t2), "file content should be read only once per process")
	//
	v3, _ := New(Config{Lang: "en", DataFile: filepath.Join(t.TempDir(), "missing.tsv")})
	_, err = v3.RawData()
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestNFCNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	decomposed := "Cafe\u0301\t3\n" // e + combining acute accent
	v, err := New(Config{Lang: "fr", Data: decomposed})
	require.NoError(t, err)
	table, err := v.FrequencyTable()
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", table.At(0).Word)
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	entries := []WordCount{{"a", 1}, {"zero", 0}, {"b", 99}}
	table := NewTable(entries)
	entries[0].Word = "mutated"
	assert.Equal(t, "a", table.At(0).Word, "table must not share its input slice")
	assert.Equal(t, int64(100), table.TotalCount())
	assert.Equal(t, 0, table.SearchWeight(0))
	assert.Equal(t, 0, table.SearchWeight(0.99))
	assert.Equal(t, 2, table.SearchWeight(1), "zero-count entries are never selected")
	assert.Equal(t, 2, table.SearchWeight(99.5))
	assert.Equal(t, []string{"a", "zero", "b"}, table.Words())
	assert.True(t, strings.HasPrefix(table.String(), "Table["))
	//
	var empty *Table
	assert.Equal(t, 0, empty.Len())
	assert.True(t, NewTable(nil).Equal(empty))
	assert.False(t, table.Equal(TableOf("a", 1, "b", 99)))
}

func TestManifest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.vocab")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "animals.txt"), []byte("koala\ncobra\n"), 0644))
	manifest := `
lang: en
bicameral: true
data_file: animals.txt
punctuation:
  end: { ".": 1 }
meta:
  source: zoo
`
	v, err := ParseManifest(strings.NewReader(manifest), dir)
	require.NoError(t, err)
	assert.True(t, v.Bicameral())
	require.NotNil(t, v.Punctuation())
	assert.Equal(t, 1, v.Punctuation().EndMarks["."])
	source, ok := v.Meta("source")
	assert.True(t, ok)
	assert.Equal(t, "zoo", source)
	table, err := v.FrequencyTable()
	require.NoError(t, err)
	assert.Equal(t, []string{"koala", "cobra"}, table.Words())
	//
	_, err = ParseManifest(strings.NewReader("lang: en\n"), dir)
	assert.True(t, errors.Is(err, core.ErrConfiguration), "manifest without data should fail")
	//
	path := filepath.Join(dir, "animals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))
	v, err = LoadManifest(path)
	require.NoError(t, err)
	_, err = v.FrequencyTable()
	assert.NoError(t, err)
}
