package exprtree

import (
	"math"
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		name string
		fn   Func
		x, r float64
	}{
		{"sin", Sin, math.Pi / 2, 1},
		{"cos", Cos, 0, 1},
		{"tan", Tan, 0, 0},
		{"abs", Abs, -2.5, 2.5},
	}
	for _, c := range cases {
		fn, ok := Lookup(c.name)
		if !ok {
			t.Errorf("%s not found", c.name)
			continue
		}
		if fn != c.fn {
			t.Errorf("%s: want %v, got %v", c.name, c.fn, fn)
		}
		if fn.String() != c.name {
			t.Errorf("%s: String gives %q", c.name, fn.String())
		}
		if r := fn.Call(c.x); r != c.r {
			t.Errorf("%s(%g): want %g, got %g", c.name, c.x, c.r, r)
		}
	}
	for _, name := range []string{"", "log", "Sin", "sinh", "X", "+"} {
		if fn, ok := Lookup(name); ok {
			t.Errorf("%q found as %v", name, fn)
		}
	}
}

func TestFuncs(t *testing.T) {
	want := []string{"sin", "cos", "tan", "abs"}
	if got := Funcs(); !reflect.DeepEqual(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
	if s := noFunc.String(); s != "Func(0)" {
		t.Errorf("invalid func formats as %q", s)
	}
}
