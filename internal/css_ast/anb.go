package css_ast

import "github.com/cssfront/cssfront/internal/span"

// AnPlusB is the parsed form of the CSS An+B micro-syntax used by
// :nth-child() and its relatives.
type AnPlusB struct {
	A    int32
	B    int32
	Span span.Span
}

// Nth is the argument of the nth-* pseudo-classes: the literal keywords
// odd/even, a bare integer, or a full An+B expression. This interface is
// never called; its purpose is to encode a variant type in Go's type
// system.
type Nth interface {
	isNth()
}

type NthOdd struct{ Span span.Span }
type NthEven struct{ Span span.Span }

func (*NthOdd) isNth()  {}
func (*NthEven) isNth() {}

// NthInteger is a bare integer `Number` used as An+B's degenerate case
// (b = value, a = 0), e.g. `:nth-child(3)`.
type NthInteger struct {
	Value int32
	Span  span.Span
}

func (*NthInteger) isNth() {}

type NthAnPlusB struct {
	Value AnPlusB
}

func (*NthAnPlusB) isNth() {}

// NthSpan returns the source span of any Nth variant.
func NthSpan(n Nth) span.Span {
	switch v := n.(type) {
	case *NthOdd:
		return v.Span
	case *NthEven:
		return v.Span
	case *NthInteger:
		return v.Span
	case *NthAnPlusB:
		return v.Value.Span
	default:
		return span.Span{}
	}
}
