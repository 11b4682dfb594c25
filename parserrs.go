package exprtree

import "strconv"

// TokenizeError indicates malformed infix input. It implements InputError.
type TokenizeError struct {
	// Col is the position of the rune that caused the error.
	Col int
	// Text is the offending text, e.g. the unterminated function name or the
	// invalid rune.
	Text string
	// Kind is what the tokenizer was checking: "number", "function",
	// "bracket", "nesting", or the empty string for an invalid rune.
	Kind string
}

func (err *TokenizeError) Error() string {
	switch err.Kind {
	case "":
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	case "number":
		return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
	case "function":
		return errpos(err.Col, "function name "+strconv.Quote(err.Text)+" not followed by (")
	case "bracket":
		if err.Text == "(" {
			return errpos(err.Col, "open bracket with no close bracket")
		}
		return errpos(err.Col, "close bracket with no open bracket")
	case "nesting":
		return errpos(err.Col, "brackets nested more than "+err.Text+" deep")
	default:
		return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
	}
}

func (err *TokenizeError) Pos() int {
	return err.Col
}

// UnknownFunctionError is an error indicating a function name in a postfix
// stream that is not a built-in function.
type UnknownFunctionError struct {
	// Name is the unrecognized name.
	Name string
	// Token is the 1-based index of the token in the postfix stream.
	Token int
}

func (err *UnknownFunctionError) Error() string {
	return "token " + strconv.Itoa(err.Token) + ": unknown function " + strconv.Quote(err.Name)
}

// MalformedRPNError is an error indicating a postfix stream that does not
// reduce to exactly one expression.
type MalformedRPNError struct {
	// Token is the 1-based index of the token that could not be applied, or 0
	// if the error was detected at the end of the stream.
	Token int
	// Text is the offending token, if any.
	Text string
	// Have is the number of operands on the stack when the error occurred.
	Have int
}

func (err *MalformedRPNError) Error() string {
	if err.Token == 0 {
		if err.Have == 0 {
			return "malformed postfix: no expression"
		}
		return "malformed postfix: " + strconv.Itoa(err.Have) + " operands left over"
	}
	if err.Text != "" && !isnumtok(err.Text) {
		return "token " + strconv.Itoa(err.Token) + ": not enough operands for " + strconv.Quote(err.Text) + " (have " + strconv.Itoa(err.Have) + ")"
	}
	return "token " + strconv.Itoa(err.Token) + ": invalid number " + strconv.Quote(err.Text)
}

// DivisionByZeroError is returned by Simplify when a division has a divisor
// that simplifies to the literal constant zero.
type DivisionByZeroError struct {
	// Dividend is the simplified dividend, formatted as infix.
	Dividend string
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + err.Dividend + "/0"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid infix text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error.
	Pos() int
}

var _ InputError = (*TokenizeError)(nil)
