package resources

import (
	"context"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/wordsiv/core"
	"github.com/npillmayer/wordsiv/core/font"
)

// NotFound returns an application error for a missing font.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise is a font which is being loaded.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
	Await(ctx context.Context) (*font.ScalableFont, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.ScalableFont, error)
}

func (loader fontLoader) Font() (*font.ScalableFont, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.ScalableFont, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a font by name. name may be a path to a font file, the
// name of a font already present in the global font registry, or the name of
// a font installed on the system. An empty name resolves to the fallback font.
//
// If a font cannot be found, the promise will deliver the fallback font,
// together with an error.
func ResolveFont(name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		result := fontPlusErr{}
		if name == "" {
			result.font = font.FallbackFont()
			ch <- result
			return
		}
		if f, ok := font.GlobalRegistry().Font(name); ok {
			tracer().Debugf("found font %s in registry", name)
			result.font = f
			ch <- result
			return
		}
		var f *font.ScalableFont
		if _, err := os.Stat(name); err == nil {
			tracer().Debugf("%s is a font file", name)
			f, result.err = font.LoadOpenTypeFont(name)
		} else {
			fpath, err := findfont.Find(name) // try to find as system font
			if err == nil && fpath != "" {
				tracer().Debugf("%s is a system font at %s", name, fpath)
				f, result.err = font.LoadOpenTypeFont(fpath)
			}
		}
		if f != nil && result.err == nil {
			f.Fontname = name
			font.GlobalRegistry().StoreFont(f)
			result.font = f
		} else {
			if result.err == nil {
				result.err = NotFound(name)
			} else {
				result.err = core.WrapError(result.err, core.EMISSING, "cannot load font %s", name)
			}
			tracer().Errorf("%v, using fallback font", result.err)
			result.font = font.FallbackFont()
		}
		ch <- result
	}(ch)
	var r fontPlusErr
	var done bool
	return fontLoader{
		await: func(ctx context.Context) (*font.ScalableFont, error) {
			if done {
				return r.font, r.err
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r = <-ch:
				done = true
				return r.font, r.err
			}
		},
	}
}
