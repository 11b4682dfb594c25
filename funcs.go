package exprtree

import (
	"math"
	"strconv"
)

// Func is one of the built-in functions of one real variable.
type Func int8

const (
	noFunc Func = iota
	Sin
	Cos
	Tan
	Abs
)

type funcdef struct {
	name string
	f    func(float64) float64
}

var globalfuncs = [...]funcdef{
	noFunc: {},
	Sin:    {"sin", math.Sin},
	Cos:    {"cos", math.Cos},
	Tan:    {"tan", math.Tan},
	Abs:    {"abs", math.Abs},
}

// Lookup finds the built-in function with the given name.
func Lookup(name string) (Func, bool) {
	for k, d := range globalfuncs {
		if k != int(noFunc) && d.name == name {
			return Func(k), true
		}
	}
	return noFunc, false
}

// Funcs returns the names of all built-in functions in declaration order.
func Funcs() []string {
	r := make([]string, 0, len(globalfuncs)-1)
	for _, d := range globalfuncs[1:] {
		r = append(r, d.name)
	}
	return r
}

// Call applies the function to x.
func (f Func) Call(x float64) float64 {
	if !f.valid() {
		panic("exprtree: call of invalid " + f.String())
	}
	return globalfuncs[f].f(x)
}

func (f Func) String() string {
	if !f.valid() {
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
	return globalfuncs[f].name
}

func (f Func) valid() bool {
	return noFunc < f && int(f) < len(globalfuncs)
}
