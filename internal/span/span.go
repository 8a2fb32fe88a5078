// Package span provides the single spelling of source provenance shared by
// the lexer, the parser, and every AST node: a byte-offset half-open
// interval into the original source text.
package span

// Span is a half-open byte interval [Start, End) into the source that
// produced it. Every token and every AST node carries exactly one.
type Span struct {
	Start int
	End   int
}

// Spanned is the interface of a value that reports its own span. Tokens
// and AST nodes in this module carry a Span field instead and do not
// implement it; free functions such as css_ast.InterpolableIdentSpan
// extract the span of a union variant.
type Spanned interface {
	Span() Span
}

// Union returns the span from a.Start to b.End; it covers both only when a
// comes first in the source and b last. Composing spans
// this way — start of the first constituent, end of the last — is the only
// way provenance is ever built up in this codebase.
func Union(a, b Span) Span {
	return Span{Start: a.Start, End: b.End}
}
