package css_ast

import "github.com/cssfront/cssfront/internal/span"

// LanguageRange is one element of :lang()'s argument: either a bare ident
// or a quoted string. This interface is never called; its purpose is to
// encode a variant type in Go's type system.
type LanguageRange interface {
	isLanguageRange()
}

type LanguageRangeIdent struct {
	Value InterpolableIdent
}

func (*LanguageRangeIdent) isLanguageRange() {}

type LanguageRangeStr struct {
	Value string
	Raw   string
	Span  span.Span
}

func (*LanguageRangeStr) isLanguageRange() {}

// LanguageRangeList is a comma-separated, non-empty list of
// LanguageRanges.
type LanguageRangeList struct {
	Ranges []LanguageRange
	Span   span.Span
}
