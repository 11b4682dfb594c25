package exprtree

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// foldprec is the precision in bits used to fold constant powers.
const foldprec = 128

// Simplify returns a new expression equivalent to e with algebraic identities
// applied and constant subexpressions folded. e itself is not changed.
//
// Simplification works bottom-up: each operation first simplifies its
// operands, then applies the first matching rule for its kind:
//
//	a+b: 0+a → a, a+0 → a, c+c → fold
//	a*b: 1*a → a, 0*a → 0, a*0 → 0, a*1 → a, c*c → fold
//	a-b: 0-a → a*-1, a-0 → a, c-c → fold
//	a/b: 0/a → 0, a/0 → error, c/c → fold
//	a^b: 1^a → 1, a^1 → a, a^0 → 1, c^c → fold
//
// where 0 and 1 are literal constants after simplification and c is any
// literal constant. Function calls simplify their argument but are never
// folded, even when the argument is constant.
//
// If a divisor simplifies to the literal 0, the result is a
// *DivisionByZeroError. A divisor which is zero only for particular values of
// X is not an error; evaluation produces an infinity or NaN there.
func (e *Expr) Simplify() (*Expr, error) {
	n, err := e.n.simplify()
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

func (n *node) simplify() (*node, error) {
	switch n.kind {
	case nodeConst, nodeVar:
		return n.clone(), nil
	case nodeCall:
		arg, err := n.left.simplify()
		if err != nil {
			return nil, err
		}
		return call(n.fn, arg), nil
	case nodeSum, nodeProd, nodeDif, nodeDiv, nodeExp:
		l, err := n.left.simplify()
		if err != nil {
			return nil, err
		}
		r, err := n.right.simplify()
		if err != nil {
			return nil, err
		}
		return rewrite(n.kind, l, r)
	default:
		panic("exprtree: simplify invalid node kind " + n.kind.String())
	}
}

// rewrite applies the identities for kind k to already simplified operands.
// The result owns l and r.
func rewrite(k nodeKind, l, r *node) (*node, error) {
	lc, rc := l.kind == nodeConst, r.kind == nodeConst
	switch k {
	case nodeSum:
		switch {
		case l.isconst(0):
			return r, nil
		case r.isconst(0):
			return l, nil
		case lc && rc:
			return constant(l.val + r.val), nil
		}
	case nodeProd:
		switch {
		case l.isconst(1):
			return r, nil
		case l.isconst(0), r.isconst(0):
			return constant(0), nil
		case r.isconst(1):
			return l, nil
		case lc && rc:
			return constant(l.val * r.val), nil
		}
	case nodeDif:
		switch {
		case l.isconst(0):
			return binary(nodeProd, r, constant(-1)), nil
		case r.isconst(0):
			return l, nil
		case lc && rc:
			return constant(l.val - r.val), nil
		}
	case nodeDiv:
		switch {
		case l.isconst(0):
			return constant(0), nil
		case r.isconst(0):
			return nil, &DivisionByZeroError{Dividend: l.String()}
		case lc && rc:
			return constant(l.val / r.val), nil
		}
	case nodeExp:
		switch {
		case l.isconst(1):
			return l, nil
		case r.isconst(1):
			return l, nil
		case r.isconst(0):
			return constant(1), nil
		case lc && rc:
			return constant(foldpow(l.val, r.val)), nil
		}
	}
	return binary(k, l, r), nil
}

// foldpow computes x^y for constant folding. Where x^y is a positive normal
// number, the result is computed in extended precision and rounded once, so
// that folded powers are correctly rounded. Everywhere else, including the
// NaN of a negative base with a fractional exponent, the result is math.Pow's.
func foldpow(x, y float64) (r float64) {
	p := math.Pow(x, y)
	if !(x > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(y) {
		return p
	}
	if p == 0 || math.IsInf(p, 0) || math.IsNaN(p) {
		return p
	}
	defer func() {
		// bigfloat panics with big.ErrNaN outside its domain. Fall back to
		// the float64 result rather than failing the fold.
		if err := recover(); err != nil {
			if _, ok := err.(big.ErrNaN); !ok {
				panic(err)
			}
			r = p
		}
	}()
	bx := new(big.Float).SetPrec(foldprec).SetFloat64(x)
	by := new(big.Float).SetPrec(foldprec).SetFloat64(y)
	z := new(big.Float).SetPrec(foldprec)
	// Pow may return a value other than z.
	f, _ := bigfloat.Pow(z, bx, by).Float64()
	if f == 0 || math.IsInf(f, 0) {
		// Rounding crossed the edge of the float64 range that p is inside.
		return p
	}
	return f
}
