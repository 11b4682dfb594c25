package exprtree

import (
	"strconv"
	"strings"
	"unicode"
)

// Delimiter separates tokens in the string form of a Postfix.
const Delimiter = ' '

// Postfix is an expression in reverse Polish notation. Each token is a
// number, X, a single operator character, or a function name.
type Postfix []string

// String joins the tokens with Delimiter.
func (p Postfix) String() string {
	return strings.Join(p, string(Delimiter))
}

// SplitPostfix splits a delimited postfix string into tokens. Runs of
// delimiters are treated as one.
func SplitPostfix(s string) Postfix {
	return Postfix(strings.FieldsFunc(s, func(r rune) bool { return r == Delimiter }))
}

// stacked is an entry on the operator stack: an operator, an open bracket,
// or a function name waiting for its argument.
type stacked struct {
	text string
	col  int
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind the operator builds.
	op nodeKind
}

// binop gets the operator for a stack entry. If the entry is not a binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	if len(text) != 1 {
		return operator{}
	}
	switch k := opkind(text[0]); k {
	case nodeSum, nodeDif:
		return operator{1, false, k}
	case nodeProd, nodeDiv:
		return operator{2, false, k}
	case nodeExp:
		// Nothing binds tighter than ^, so it is always pushed without
		// flushing. That makes chains of ^ right-associative.
		return operator{3, true, k}
	default:
		return operator{}
	}
}

// yields reports whether top must be emitted before p is pushed.
func (p operator) yields(top operator) bool {
	if top.op == nodeNone {
		return false
	}
	if p.right {
		return top.prec > p.prec
	}
	return top.prec >= p.prec
}

// converter holds the state of one shunting-yard conversion.
type converter struct {
	p   parsectx
	out Postfix
	ops []stacked
	// fns holds the bracket depth inside each open function call, innermost
	// last. When a count returns to zero, the call's argument is complete.
	fns []int
	// depth is the current bracket nesting.
	depth int

	num     strings.Builder
	numcol  int
	name    strings.Builder
	namecol int
	// nameends is set when whitespace follows a pending function name, so
	// that only ( may come next.
	nameends bool
}

// Tokenize converts an infix expression to postfix using the shunting-yard
// algorithm. Numbers are runs of digits and dots; X is the variable; + - * /
// and ^ are binary operators, with ^ binding tightest; a run of letters must
// be followed by ( and names a function applied to the bracketed argument.
// Whitespace separates tokens and is otherwise ignored.
//
// Tokenize checks brackets and the shape of numbers and names, but it does
// not check arity or that function names exist. Build reports those.
func Tokenize(src string, opts ...ParseOption) (Postfix, error) {
	c := converter{p: defaultctx()}
	for _, opt := range opts {
		c.p = opt.parseOption(c.p)
	}
	col := 0
	for _, r := range src {
		col++
		if err := c.step(r, col); err != nil {
			return nil, err
		}
	}
	if err := c.endnum(); err != nil {
		return nil, err
	}
	if c.name.Len() != 0 {
		return nil, c.nameerr()
	}
	for len(c.ops) > 0 {
		top := c.pop()
		if top.text == "(" {
			return nil, &TokenizeError{Col: top.col, Text: "(", Kind: "bracket"}
		}
		c.out = append(c.out, top.text)
	}
	return c.out, nil
}

func (c *converter) step(r rune, col int) error {
	if '0' <= r && r <= '9' || r == '.' {
		if c.name.Len() != 0 {
			return c.nameerr()
		}
		if c.num.Len() == 0 {
			c.numcol = col
		}
		c.num.WriteRune(r)
		return nil
	}
	if err := c.endnum(); err != nil {
		return err
	}
	if unicode.IsSpace(r) {
		if c.name.Len() != 0 {
			c.nameends = true
		}
		return nil
	}
	if r != 'X' && unicode.IsLetter(r) {
		if c.nameends {
			return c.nameerr()
		}
		if c.name.Len() == 0 {
			c.namecol = col
		}
		c.name.WriteRune(r)
		return nil
	}
	if c.name.Len() != 0 && r != '(' {
		return c.nameerr()
	}
	switch r {
	case '+', '-', '*', '/', '^':
		text := string(r)
		p := binop(text)
		for len(c.ops) > 0 && p.yields(binop(c.ops[len(c.ops)-1].text)) {
			c.out = append(c.out, c.pop().text)
		}
		c.ops = append(c.ops, stacked{text, col})
	case '(':
		c.depth++
		if c.depth > c.p.maxnest {
			return &TokenizeError{Col: col, Text: strconv.Itoa(c.p.maxnest), Kind: "nesting"}
		}
		if c.name.Len() != 0 {
			c.ops = append(c.ops, stacked{c.name.String(), c.namecol})
			c.fns = append(c.fns, 0)
			c.name.Reset()
			c.nameends = false
		}
		c.ops = append(c.ops, stacked{"(", col})
		if len(c.fns) > 0 {
			c.fns[len(c.fns)-1]++
		}
	case ')':
		for {
			if len(c.ops) == 0 {
				return &TokenizeError{Col: col, Text: ")", Kind: "bracket"}
			}
			top := c.pop()
			if top.text == "(" {
				break
			}
			c.out = append(c.out, top.text)
		}
		c.depth--
		if k := len(c.fns) - 1; k >= 0 {
			c.fns[k]--
			if c.fns[k] == 0 {
				c.fns = c.fns[:k]
				c.out = append(c.out, c.pop().text)
			}
		}
	case 'X':
		c.out = append(c.out, "X")
	default:
		return &TokenizeError{Col: col, Text: string(r)}
	}
	return nil
}

// endnum emits the pending number, if any.
func (c *converter) endnum() error {
	if c.num.Len() == 0 {
		return nil
	}
	text := c.num.String()
	c.num.Reset()
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return &TokenizeError{Col: c.numcol, Text: text, Kind: "number"}
	}
	c.out = append(c.out, text)
	return nil
}

func (c *converter) nameerr() error {
	return &TokenizeError{Col: c.namecol, Text: c.name.String(), Kind: "function"}
}

func (c *converter) pop() stacked {
	top := c.ops[len(c.ops)-1]
	c.ops = c.ops[:len(c.ops)-1]
	return top
}
