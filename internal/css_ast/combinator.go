package css_ast

import "github.com/cssfront/cssfront/internal/span"

type CombinatorKind uint8

const (
	Descendant CombinatorKind = iota
	Child
	NextSibling
	LaterSibling
	Column
)

func (k CombinatorKind) String() string {
	switch k {
	case Descendant:
		return " "
	case Child:
		return ">"
	case NextSibling:
		return "+"
	case LaterSibling:
		return "~"
	case Column:
		return "||"
	default:
		return "?"
	}
}

// Combinator joins two CompoundSelectors inside a ComplexSelector. A
// Descendant combinator has no explicit token of its own; its span covers
// the whitespace/comment gap that implies it.
type Combinator struct {
	Kind CombinatorKind
	Span span.Span
}
