//go:build go1.18
// +build go1.18

package exprtree_test

import (
	"testing"

	"github.com/zephyrtronium/exprtree"
)

func FuzzParse(f *testing.F) {
	f.Add("X")
	f.Add("X + 4 ^ 2 * 2 / (5 - 1)")
	f.Add("abs((sin(X))")
	f.Add("sin(X)^2+cos(X)^2")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := exprtree.Parse(s)
		if err != nil {
			if e != nil {
				t.Errorf("%q: got tree %v with error %v", s, e, err)
			}
			return
		}
		p := e.String()
		r, err := exprtree.Parse(p)
		if err != nil {
			t.Fatalf("%q printed as %q, which failed to parse: %v", s, p, err)
		}
		if q := r.String(); q != p {
			t.Errorf("%q printed as %q, then as %q", s, p, q)
		}
	})
}
