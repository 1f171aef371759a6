package option

import (
	"strconv"
)

// Type is an interface for optional values.
type Type interface {
	IsNone() bool
	String() string
}

// --- Int -------------------------------------------------------------------

// Int is an optional int. The zero value is unset.
type Int struct {
	value int
	some  bool
}

// SomeInt creates an optional int with an initial value of x.
func SomeInt(x int) Int {
	return Int{value: x, some: true}
}

// IsNone returns true if o is unset.
func (o Int) IsNone() bool {
	return !o.some
}

// Unwrap returns the value of o, or 0 if o is unset.
func (o Int) Unwrap() int {
	return o.value
}

// UnwrapOr returns the value of o, or dflt if o is unset.
func (o Int) UnwrapOr(dflt int) int {
	if !o.some {
		return dflt
	}
	return o.value
}

func (o Int) String() string {
	if !o.some {
		return "Int.None"
	}
	return strconv.Itoa(o.value)
}

// --- Float -----------------------------------------------------------------

// Float is an optional float64. The zero value is unset.
type Float struct {
	value float64
	some  bool
}

// SomeFloat creates an optional float64 with an initial value of x.
func SomeFloat(x float64) Float {
	return Float{value: x, some: true}
}

// IsNone returns true if o is unset.
func (o Float) IsNone() bool {
	return !o.some
}

// Unwrap returns the value of o, or 0 if o is unset.
func (o Float) Unwrap() float64 {
	return o.value
}

// UnwrapOr returns the value of o, or dflt if o is unset.
func (o Float) UnwrapOr(dflt float64) float64 {
	if !o.some {
		return dflt
	}
	return o.value
}

func (o Float) String() string {
	if !o.some {
		return "Float.None"
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}

// AnySome returns true if at least one of the options is set.
func AnySome(opts ...Type) bool {
	for _, o := range opts {
		if !o.IsNone() {
			return true
		}
	}
	return false
}

var _ Type = Int{}
var _ Type = Float{}
