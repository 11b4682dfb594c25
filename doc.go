// Package exprtree parses, simplifies, and evaluates expressions of one
// variable.
//
// Expressions are written in ordinary infix: "X + 4 ^ 2 * 2 / (5 - 1)" or
// "abs(sin(X))". Numbers are decimal with an optional fraction, X is the
// variable, and + - * / ^ are the binary operators, where ^ binds tightest and
// associates to the right. The functions sin, cos, tan and abs take one
// bracketed argument. There is no unary minus; write 0-a instead.
//
// Parsing happens in two steps. Tokenize converts the infix text to postfix
// with the shunting-yard algorithm, and Build turns the postfix stream into a
// tree. Parse does both. A tree is immutable: Simplify returns a new tree with
// identities like a+0 and a^1 removed and constant subexpressions folded, and
// Eval may be called any number of times, e.g. to sample the expression over an
// interval for plotting.
package exprtree
