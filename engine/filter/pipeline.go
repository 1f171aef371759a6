package filter

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/npillmayer/wordsiv/core/glyphs"
	"github.com/npillmayer/wordsiv/core/vocab"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the number of memoized tables of the default pipeline.
const DefaultCacheSize = 512

// Pipeline applies filter requests to frequency tables. It memoizes every
// stage as well as complete requests in a bounded LRU cache. Concurrent
// identical computations are collapsed into one.
//
// A Pipeline is safe for concurrent use.
type Pipeline struct {
	mu     sync.Mutex
	cache  *lru.Cache
	group  singleflight.Group
	hits   int
	misses int
}

// NewPipeline creates a pipeline which memoizes up to maxEntries tables.
// maxEntries ≤ 0 means no limit.
func NewPipeline(maxEntries int) *Pipeline {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Pipeline{cache: lru.New(maxEntries)}
}

var defaultPipeline struct {
	once     sync.Once
	pipeline *Pipeline
}

// Default returns the process-wide pipeline.
func Default() *Pipeline {
	defaultPipeline.once.Do(func() {
		defaultPipeline.pipeline = NewPipeline(DefaultCacheSize)
	})
	return defaultPipeline.pipeline
}

// Stats returns the number of cache hits and misses so far.
func (p *Pipeline) Stats() (hits, misses int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}

// Clear drops all memoized tables.
func (p *Pipeline) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache.Clear()
}

// Filter applies the request o to table t, for glyph set g. m is needed only
// if o asks for a width filter and may be nil otherwise.
//
// If no word survives filtering, Filter returns an error with code
// core.ENOWORDS. Requests which cannot be served (e.g., a width filter without
// metrics) result in an error with code core.ECONFIG.
func (p *Pipeline) Filter(t *vocab.Table, g glyphs.Set, m Metrics, o Options) (*vocab.Table, error) {
	if err := o.validate(m); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%016x|%s|%s|%s", t.Fingerprint(), glyphsKey(g), metricsKey(m), o)
	result := p.memo(key, t, func() *vocab.Table {
		return p.run(t, g, m, o)
	})
	if result.IsEmpty() {
		tracer().Debugf("filter %s leaves no words", o)
		return nil, noWords(o)
	}
	return result, nil
}

// run computes the stages of a request one after the other, every stage
// memoized on its own.
func (p *Pipeline) run(t *vocab.Table, g glyphs.Set, m Metrics, o Options) *vocab.Table {
	tracer().Debugf("filtering %d words with %s", t.Len(), o)
	switch {
	case o.Upper:
		t = p.stage(t, "upper", glyphsKey(g)+"|"+o.Lang.String(), func() *vocab.Table {
			return Upper(t, g, o.Lang)
		})
	case o.Lower:
		t = p.stage(t, "lower", glyphsKey(g)+"|"+o.Lang.String(), func() *vocab.Table {
			return Lower(t, g, o.Lang)
		})
	case o.Capitalize:
		t = p.stage(t, "cap", glyphsKey(g)+"|"+o.Lang.String(), func() *vocab.Table {
			return Capitalize(t, g, o.Lang)
		})
	default:
		t = p.stage(t, "avail", glyphsKey(g), func() *vocab.Table {
			return Available(t, g)
		})
	}
	if o.wantsLength() {
		lo, hi := o.lengthBounds()
		t = p.stage(t, "len", fmt.Sprintf("%d,%d", lo, hi), func() *vocab.Table {
			return Length(t, lo, hi)
		})
	}
	if o.wantsWidth() {
		lo, hi := o.widthBounds()
		t = p.stage(t, "width", fmt.Sprintf("%s|%g,%g", metricsKey(m), lo, hi), func() *vocab.Table {
			return Width(t, m, lo, hi)
		})
	}
	if o.wantsTop() {
		n := o.Top.Unwrap()
		t = p.stage(t, "top", fmt.Sprintf("%d", n), func() *vocab.Table {
			return Top(t, n)
		})
	}
	if o.Must != "" {
		switch {
		case o.Position != "":
			t = p.stage(t, "pos", fmt.Sprintf("%q|%s", o.Must, o.Position), func() *vocab.Table {
				return Positioned(t, o.Must, o.Position)
			})
		case o.MustAll:
			t = p.stage(t, "mustall", fmt.Sprintf("%q", o.Must), func() *vocab.Table {
				return MustAll(t, o.Must)
			})
		default:
			t = p.stage(t, "must", fmt.Sprintf("%q", o.Must), func() *vocab.Table {
				return Must(t, o.Must)
			})
		}
	}
	return t
}

func (p *Pipeline) stage(t *vocab.Table, name, params string, compute func() *vocab.Table) *vocab.Table {
	key := fmt.Sprintf("%016x/%s/%s", t.Fingerprint(), name, params)
	return p.memo(key, t, compute)
}

// memoEntry is a memoized table together with the table it was derived from.
// Keys carry only a hash of the source table, so hits are confirmed against
// the source.
type memoEntry struct {
	src    *vocab.Table
	result *vocab.Table
}

func (e memoEntry) derivedFrom(t *vocab.Table) bool {
	return e.src == t || e.src.Equal(t)
}

func (p *Pipeline) memo(key string, src *vocab.Table, compute func() *vocab.Table) *vocab.Table {
	p.mu.Lock()
	if v, ok := p.cache.Get(key); ok && v.(memoEntry).derivedFrom(src) {
		p.hits++
		p.mu.Unlock()
		return v.(memoEntry).result
	}
	p.misses++
	p.mu.Unlock()
	v, _, _ := p.group.Do(key, func() (interface{}, error) {
		e := memoEntry{src: src, result: compute()}
		p.mu.Lock()
		p.cache.Add(key, e)
		p.mu.Unlock()
		return e, nil
	})
	if e := v.(memoEntry); e.derivedFrom(src) {
		return e.result
	}
	tracer().Debugf("memo key collision for %s", key)
	return compute()
}

func glyphsKey(g glyphs.Set) string {
	if !g.Limited() {
		return "*"
	}
	return fmt.Sprintf("%q", g.String())
}

// metricsKey identifies a metrics provider. Providers may supply an identity
// by implementing Key() string, otherwise their address or value is used.
func metricsKey(m Metrics) string {
	if m == nil {
		return "-"
	}
	if k, ok := m.(interface{ Key() string }); ok {
		return k.Key()
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice:
		return fmt.Sprintf("%T@%x", m, v.Pointer())
	}
	return fmt.Sprintf("%T:%v", m, m)
}
