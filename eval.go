package exprtree

import "math"

// Expr is an immutable expression tree of one variable. An Expr may be
// evaluated any number of times and from any number of goroutines.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Eval evaluates the expression with X set to x. Evaluation uses IEEE-754
// double arithmetic throughout, so values outside the domain of an operation,
// such as a division by a subexpression that is zero at x, produce infinities
// or NaN rather than errors.
func (e *Expr) Eval(x float64) float64 {
	return e.n.eval(x)
}

func (n *node) eval(x float64) float64 {
	switch n.kind {
	case nodeConst:
		return n.val
	case nodeVar:
		return x
	case nodeSum:
		return n.left.eval(x) + n.right.eval(x)
	case nodeProd:
		return n.left.eval(x) * n.right.eval(x)
	case nodeDif:
		return n.left.eval(x) - n.right.eval(x)
	case nodeDiv:
		return n.left.eval(x) / n.right.eval(x)
	case nodeExp:
		return math.Pow(n.left.eval(x), n.right.eval(x))
	case nodeCall:
		return n.fn.Call(n.left.eval(x))
	default:
		panic("exprtree: invalid AST node " + n.kind.String())
	}
}

// String formats the expression as fully parenthesized infix. Every binary
// operation is wrapped in parentheses and function arguments are written as
// name(arg). The result of formatting a tree built by Parse parses to an
// equivalent expression. Simplify can fold negative or non-finite constants,
// which have no infix spelling, so its results need not parse.
func (e *Expr) String() string {
	return e.n.String()
}

// Clone returns a deep copy of the expression.
func (e *Expr) Clone() *Expr {
	return &Expr{n: e.n.clone()}
}

// Kind returns the kind of the root of the expression.
func (e *Expr) Kind() Kind {
	return Kind(e.n.kind)
}

// Value returns the value of the expression if it is a literal constant.
func (e *Expr) Value() (float64, bool) {
	if e.n.kind != nodeConst {
		return 0, false
	}
	return e.n.val, true
}

// Depth returns the height of the expression tree. Leaves have depth 1.
func (e *Expr) Depth() int {
	return e.n.depth()
}

// Func returns the function applied at the root of the expression, if the
// root is a call.
func (e *Expr) Func() (Func, bool) {
	if e.n.kind != nodeCall {
		return noFunc, false
	}
	return e.n.fn, true
}

// Operands returns copies of the operands of the root of the expression: the
// left and right operands of a binary operation, the argument of a call, or
// nothing for a leaf.
func (e *Expr) Operands() []*Expr {
	switch {
	case e.n.kind == nodeCall:
		return []*Expr{{n: e.n.left.clone()}}
	case e.n.kind.binary():
		return []*Expr{{n: e.n.left.clone()}, {n: e.n.right.clone()}}
	default:
		return nil
	}
}
