package exprtree

import "strconv"

// Build constructs an expression tree from a postfix token stream. Numbers
// become constants, X becomes the variable, each operator takes the two
// preceding operands, and each function name takes the one preceding operand.
// The stream must reduce to exactly one expression.
func Build(rpn Postfix) (*Expr, error) {
	stack := make([]*node, 0, len(rpn)/2+1)
	for i, tok := range rpn {
		pos := i + 1
		switch {
		case tok == "X":
			stack = append(stack, variable())
		case isnumtok(tok):
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &MalformedRPNError{Token: pos, Text: tok, Have: len(stack)}
			}
			stack = append(stack, constant(v))
		case len(tok) == 1 && opkind(tok[0]) != nodeNone:
			if len(stack) < 2 {
				return nil, &MalformedRPNError{Token: pos, Text: tok, Have: len(stack)}
			}
			l, r := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			stack = append(stack, binary(opkind(tok[0]), l, r))
		default:
			fn, ok := Lookup(tok)
			if !ok {
				return nil, &UnknownFunctionError{Name: tok, Token: pos}
			}
			if len(stack) < 1 {
				return nil, &MalformedRPNError{Token: pos, Text: tok, Have: len(stack)}
			}
			stack[len(stack)-1] = call(fn, stack[len(stack)-1])
		}
	}
	if len(stack) != 1 {
		return nil, &MalformedRPNError{Have: len(stack)}
	}
	return &Expr{n: stack[0]}, nil
}

// Parse converts an infix expression to an expression tree. It is shorthand
// for Tokenize followed by Build.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	rpn, err := Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}
	return Build(rpn)
}

// isnumtok reports whether a postfix token is meant as a number. Postfix
// written by hand may carry a sign, which Tokenize never emits.
func isnumtok(tok string) bool {
	if len(tok) > 1 && (tok[0] == '-' || tok[0] == '+') {
		tok = tok[1:]
	}
	return tok != "" && ('0' <= tok[0] && tok[0] <= '9' || tok[0] == '.')
}
