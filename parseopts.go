package exprtree

import "strconv"

// DefaultNestingLimit is the deepest bracket nesting Tokenize accepts unless
// changed with NestingLimit. Trees built from such input are evaluated,
// printed and simplified recursively, one stack frame per level.
const DefaultNestingLimit = 256

// ParseOption is an option for tokenizing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type nestopt int

// parsectx holds the settings for one call to Tokenize.
type parsectx struct {
	// maxnest is the maximum bracket depth.
	maxnest int
}

func defaultctx() parsectx {
	return parsectx{maxnest: DefaultNestingLimit}
}

// NestingLimit sets the maximum depth of nested brackets. Panics if n is not
// positive.
func NestingLimit(n int) ParseOption {
	if n <= 0 {
		panic("exprtree: nesting limit must be positive, not " + strconv.Itoa(n))
	}
	return nestopt(n)
}

func (o nestopt) parseOption(p parsectx) parsectx {
	p.maxnest = int(o)
	return p
}
