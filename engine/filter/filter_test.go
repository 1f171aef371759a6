package filter

import (
	"errors"
	"math"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/npillmayer/wordsiv/core/option"
	"github.com/npillmayer/wordsiv/core/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// perRune is a metrics stub where every character has the same width.
type perRune float64

func (w perRune) RoughWordWidth(word string) float64 {
	return float64(w) * float64(utf8.RuneCountInString(word))
}

func animals() *vocab.Table {
	return vocab.TableOf("duck", 1, "pig", 2, "thing", 3, "zorro", 4, "page", 5)
}

func TestAvailable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := animals()
	assert.Same(t, table, Available(table, glyphs.Unlimited()))
	avail := Available(table, glyphs.NewSet("gipa"))
	assert.Equal(t, []string{"pig"}, avail.Words())
	avail = Available(table, glyphs.NewSet("gipae"))
	assert.Equal(t, []string{"pig", "page"}, avail.Words())
}

func TestCaseStagesDedupe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := vocab.TableOf("the", 5, "The", 3, "THE", 1, "dog", 2)
	upper := Upper(table, glyphs.Unlimited(), language.English)
	assert.Equal(t, []vocab.WordCount{{Word: "THE", Count: 5}, {Word: "DOG", Count: 2}}, upper.Entries())
	lower := Lower(table, glyphs.Unlimited(), language.English)
	assert.Equal(t, []string{"the", "dog"}, lower.Words())
	caps := Capitalize(vocab.TableOf("hello", 1, "WORLD", 2), glyphs.Unlimited(), language.English)
	assert.Equal(t, []string{"Hello", "World"}, caps.Words())
}

func TestCapitalizeWholeWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	assert.Equal(t, "Well-known", CapitalizeWord("well-known", language.English))
	assert.Equal(t, "Well-known", CapitalizeWord("WELL-KNOWN", language.English))
	assert.Equal(t, "O'neil", CapitalizeWord("o'Neil", language.English))
	assert.Equal(t, "E\u0301cole", CapitalizeWord("e\u0301COLE", language.French))
	assert.Equal(t, "", CapitalizeWord("", language.English))
	caps := Capitalize(vocab.TableOf("well-known", 1, "Well-Known", 2), glyphs.Unlimited(), language.English)
	assert.Equal(t, []vocab.WordCount{{Word: "Well-known", Count: 1}}, caps.Entries())
}

func TestCaseStagesIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := vocab.TableOf("the", 5, "The", 3, "dog", 2, "Dog", 7, "cat", 1)
	g := glyphs.Unlimited()
	for name, stage := range map[string]func(*vocab.Table, glyphs.Set, language.Tag) *vocab.Table{
		"upper": Upper, "lower": Lower, "cap": Capitalize,
	} {
		once := stage(table, g, language.English)
		twice := stage(once, g, language.English)
		assert.True(t, once.Equal(twice), "%s filter should be idempotent", name)
	}
}

func TestCaseStageChecksRewrittenWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := vocab.TableOf("dog", 1, "cat", 2)
	upper := Upper(table, glyphs.NewSet("DOG"), language.English)
	assert.Equal(t, []string{"DOG"}, upper.Words())
}

func TestLengthIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := animals()
	assert.True(t, table.Equal(Length(table, 0, math.MaxInt)))
	assert.Equal(t, []string{"duck", "page"}, Length(table, 4, 4).Words())
	assert.Equal(t, []string{"thing", "zorro"}, Length(table, 5, math.MaxInt).Words())
}

func TestTopPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := animals()
	for n := 0; n <= 7; n++ {
		top := Top(table, n)
		expected := n
		if n > table.Len() {
			expected = table.Len()
		}
		require.Equal(t, expected, top.Len())
		for i := 0; i < top.Len(); i++ {
			assert.Equal(t, table.At(i), top.At(i))
		}
	}
}

func TestMustScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	words, err := NewPipeline(16).Filter(animals(), glyphs.Unlimited(), nil, Options{Must: "gip"})
	require.NoError(t, err)
	assert.Equal(t, []vocab.WordCount{
		{Word: "pig", Count: 2}, {Word: "thing", Count: 3}, {Word: "page", Count: 5},
	}, words.Entries())
	assert.Equal(t, []string{"pig"}, MustAll(animals(), "gip").Words())
}

func TestPositioned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := vocab.TableOf("gag", 1, "gorilla", 2, "g", 3, "egg", 4)
	assert.Equal(t, []string{"gag"}, Positioned(table, "g", glyphs.InitFina).Words())
	assert.Equal(t, []string{"g"}, Positioned(table, "g", glyphs.Isol).Words())
	assert.Equal(t, []string{"gorilla"}, Positioned(table, "g", glyphs.Init).Words())
}

func TestWidthEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	table := animals()
	p := NewPipeline(64)
	m := perRune(0.1)
	for _, tol := range []float64{0.05, -0.05, 0.15} {
		exact, err1 := p.Filter(table, glyphs.Unlimited(), m, Options{
			Width:          option.SomeFloat(0.4),
			WidthTolerance: option.SomeFloat(tol),
		})
		ranged, err2 := p.Filter(table, glyphs.Unlimited(), m, Options{
			MinWidth: option.SomeFloat(0.4 - math.Abs(tol)),
			MaxWidth: option.SomeFloat(0.4 + math.Abs(tol)),
		})
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.True(t, exact.Equal(ranged), "width %g±%g should equal range", 0.4, tol)
	}
	words, err := p.Filter(table, glyphs.Unlimited(), m, Options{Width: option.SomeFloat(0.3)})
	require.NoError(t, err)
	assert.Equal(t, []string{"pig"}, words.Words())
}

func TestWidthNeedsMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	_, err := NewPipeline(16).Filter(animals(), glyphs.Unlimited(), nil, Options{
		MaxWidth: option.SomeFloat(10),
	})
	require.Error(t, err)
	assert.Equal(t, core.ECONFIG, core.Code(err))
	assert.True(t, errors.Is(err, core.ErrConfiguration))
}

func TestInvalidPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	p := NewPipeline(16)
	_, err := p.Filter(animals(), glyphs.Unlimited(), nil, Options{Must: "g", Position: "middle"})
	assert.Equal(t, core.ECONFIG, core.Code(err))
	_, err = p.Filter(animals(), glyphs.Unlimited(), nil, Options{Must: "gi", Position: glyphs.Init})
	assert.Equal(t, core.ECONFIG, core.Code(err))
}

func TestNoWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	p := NewPipeline(16)
	_, err := p.Filter(animals(), glyphs.Unlimited(), nil, Options{Length: option.SomeInt(12)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNoWords))
	assert.Equal(t, core.ENOWORDS, core.Code(err))
	assert.NotContains(t, err.Error(), "must")
	_, err = p.Filter(animals(), glyphs.Unlimited(), nil, Options{Must: "x", Position: glyphs.Fina})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must=\"x\"")
	assert.Contains(t, err.Error(), "position=fina")
}

func TestStageOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	// top is applied after length, so it picks from the words of length 5
	words, err := NewPipeline(16).Filter(animals(), glyphs.Unlimited(), nil, Options{
		Length: option.SomeInt(5),
		Top:    option.SomeInt(1),
		Upper:  true,
		Lang:   language.English,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"THING"}, words.Words())
}

func TestPipelineMemoizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	p := NewPipeline(64)
	o := Options{MinLength: option.SomeInt(4), Must: "g"}
	first, err := p.Filter(animals(), glyphs.Unlimited(), nil, o)
	require.NoError(t, err)
	_, missesBefore := p.Stats()
	second, err := p.Filter(animals(), glyphs.Unlimited(), nil, o)
	require.NoError(t, err)
	hits, misses := p.Stats()
	assert.Same(t, first, second, "identical requests should share the memoized table")
	assert.Equal(t, missesBefore, misses)
	assert.GreaterOrEqual(t, hits, 1)
	p.Clear()
	third, err := p.Filter(animals(), glyphs.Unlimited(), nil, o)
	require.NoError(t, err)
	assert.True(t, first.Equal(third))
}

func TestMemoConfirmsSourceTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	p := NewPipeline(16)
	first := vocab.TableOf("pig", 1)
	second := vocab.TableOf("dog", 1)
	r := p.memo("same-key", first, func() *vocab.Table { return Top(first, 1) })
	assert.Equal(t, []string{"pig"}, r.Words())
	// a key shared by different tables must not deliver the other table's result
	r = p.memo("same-key", second, func() *vocab.Table { return Top(second, 1) })
	assert.Equal(t, []string{"dog"}, r.Words())
	r = p.memo("same-key", vocab.TableOf("dog", 1), func() *vocab.Table {
		t.Errorf("expected a hit for an equal source table")
		return nil
	})
	assert.Equal(t, []string{"dog"}, r.Words())
}

func TestPipelineConcurrent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	p := Default()
	table := animals()
	var wg sync.WaitGroup
	results := make([]*vocab.Table, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p.Filter(table, glyphs.NewSet("dgikpu"), nil, Options{})
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, []string{"pig"}, r.Words())
	}
}

func TestMetricsKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.filter")
	defer teardown()
	//
	assert.Equal(t, "-", metricsKey(nil))
	assert.Equal(t, metricsKey(perRune(0.1)), metricsKey(perRune(0.1)))
	assert.NotEqual(t, metricsKey(perRune(0.1)), metricsKey(perRune(0.2)))
}
