package option_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordsiv/core/option"
)

func TestOptionInt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.core")
	defer teardown()
	//
	var x option.Int
	if !x.IsNone() {
		t.Errorf("expected zero value of Int to be unset")
	}
	if x.UnwrapOr(7) != 7 {
		t.Errorf("expected unset Int to unwrap to default 7, is %d", x.UnwrapOr(7))
	}
	x = option.SomeInt(0)
	if x.IsNone() {
		t.Errorf("expected SomeInt(0) to be set")
	}
	if x.UnwrapOr(7) != 0 {
		t.Errorf("expected SomeInt(0) to unwrap to 0, is %d", x.UnwrapOr(7))
	}
	if x.String() != "0" || (option.Int{}).String() != "Int.None" {
		t.Errorf("unexpected string representation %q", x.String())
	}
}

func TestOptionFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.core")
	defer teardown()
	//
	var f option.Float
	if !f.IsNone() || f.Unwrap() != 0 {
		t.Errorf("expected zero value of Float to be unset")
	}
	f = option.SomeFloat(2.5)
	if f.UnwrapOr(1) != 2.5 {
		t.Errorf("expected SomeFloat(2.5) to unwrap to 2.5, is %g", f.UnwrapOr(1))
	}
	if f.String() != "2.5" {
		t.Errorf("unexpected string representation %q", f.String())
	}
}

func TestAnySome(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordsiv.core")
	defer teardown()
	//
	if option.AnySome(option.Int{}, option.Float{}) {
		t.Errorf("expected no option to be set")
	}
	if !option.AnySome(option.Int{}, option.SomeFloat(0)) {
		t.Errorf("expected one option to be set")
	}
}
