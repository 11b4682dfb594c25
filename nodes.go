package exprtree

import (
	"strconv"
	"strings"
)

// node is a node in an expression tree. Nodes are never modified after they
// are built; every non-leaf node exclusively owns its children.
type node struct {
	kind nodeKind

	// val is the value of a nodeConst.
	val float64
	// fn is the function applied by a nodeCall.
	fn Func

	left  *node // lhs of binary kinds, argument of nodeCall
	right *node // rhs of binary kinds
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // val
	nodeVar   // the variable X

	nodeSum  // left + right
	nodeProd // left * right
	nodeDif  // left - right
	nodeDiv  // left / right
	nodeExp  // left ^ right

	nodeCall // fn(left)
)

// Kind identifies the shape of the root of an expression.
type Kind int8

const (
	Invalid Kind = Kind(nodeNone)
	Const   Kind = Kind(nodeConst)
	Var     Kind = Kind(nodeVar)
	Sum     Kind = Kind(nodeSum)
	Prod    Kind = Kind(nodeProd)
	Dif     Kind = Kind(nodeDif)
	Div     Kind = Kind(nodeDiv)
	Exp     Kind = Kind(nodeExp)
	Call    Kind = Kind(nodeCall)
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind
//go:generate go mod tidy

// binary reports whether the kind has two children.
func (k nodeKind) binary() bool {
	return nodeSum <= k && k <= nodeExp
}

// opchar is the operator character for binary kinds.
func (k nodeKind) opchar() byte {
	switch k {
	case nodeSum:
		return '+'
	case nodeProd:
		return '*'
	case nodeDif:
		return '-'
	case nodeDiv:
		return '/'
	case nodeExp:
		return '^'
	default:
		panic("exprtree: no operator for node kind " + k.String())
	}
}

// opkind is the inverse of opchar. The result is nodeNone if c is not an
// operator.
func opkind(c byte) nodeKind {
	switch c {
	case '+':
		return nodeSum
	case '*':
		return nodeProd
	case '-':
		return nodeDif
	case '/':
		return nodeDiv
	case '^':
		return nodeExp
	default:
		return nodeNone
	}
}

func constant(v float64) *node {
	return &node{kind: nodeConst, val: v}
}

func variable() *node {
	return &node{kind: nodeVar}
}

func binary(k nodeKind, l, r *node) *node {
	return &node{kind: k, left: l, right: r}
}

func call(fn Func, arg *node) *node {
	return &node{kind: nodeCall, fn: fn, left: arg}
}

// isconst reports whether n is a literal constant with value v.
func (n *node) isconst(v float64) bool {
	return n.kind == nodeConst && n.val == v
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(fmtnum(n.val))
	case nodeVar:
		b.WriteByte('X')
	case nodeSum, nodeProd, nodeDif, nodeDiv, nodeExp:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(n.kind.opchar())
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		b.WriteString(n.fn.String())
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	default:
		panic("exprtree: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// fmtnum formats a constant so that the tokenizer reads back the same value
// for any constant it could have produced. Exponent notation is never used.
func fmtnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// clone deep-copies n.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	return &node{
		kind:  n.kind,
		val:   n.val,
		fn:    n.fn,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

// depth is the number of nodes on the longest path from n to a leaf.
func (n *node) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if r > l {
		l = r
	}
	return l + 1
}
