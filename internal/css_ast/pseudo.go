package css_ast

import "github.com/cssfront/cssfront/internal/span"

// PseudoClassSelectorArg is the dispatched argument grammar of a
// `:name(...)` pseudo-class. This interface is never called; its purpose
// is to encode a variant type in Go's type system.
type PseudoClassSelectorArg interface {
	isPseudoClassSelectorArg()
}

type PseudoArgNth struct{ Value Nth }
type PseudoArgSelectorList struct{ Value SelectorList }
type PseudoArgRelativeSelectorList struct{ Value RelativeSelectorList }
type PseudoArgIdent struct{ Value InterpolableIdent }
type PseudoArgLanguageRangeList struct{ Value LanguageRangeList }
type PseudoArgCompoundSelectorList struct{ Value CompoundSelectorList }
type PseudoArgCompoundSelector struct{ Value CompoundSelector }

// PseudoArgGeneric is the fallback for pseudo-class/element names this
// parser does not special-case: the argument's raw, paren-balanced source
// text, kept unparsed. This resolves the open question left by the
// upstream grammar (which simply panics on an unrecognized name) by
// surfacing a well-formed, if opaque, argument instead.
type PseudoArgGeneric struct {
	Raw  string
	Span span.Span
}

func (*PseudoArgNth) isPseudoClassSelectorArg()                  {}
func (*PseudoArgSelectorList) isPseudoClassSelectorArg()         {}
func (*PseudoArgRelativeSelectorList) isPseudoClassSelectorArg() {}
func (*PseudoArgIdent) isPseudoClassSelectorArg()                {}
func (*PseudoArgLanguageRangeList) isPseudoClassSelectorArg()    {}
func (*PseudoArgCompoundSelectorList) isPseudoClassSelectorArg() {}
func (*PseudoArgCompoundSelector) isPseudoClassSelectorArg()     {}
func (*PseudoArgGeneric) isPseudoClassSelectorArg()              {}

// PseudoClassSelector is `:name` or `:name(arg)`.
type PseudoClassSelector struct {
	Name InterpolableIdent
	Arg  PseudoClassSelectorArg // nil when the pseudo-class takes no argument
	Span span.Span
}

// PseudoElementSelectorArg is the dispatched argument grammar of a
// `::name(...)` pseudo-element. This interface is never called; its
// purpose is to encode a variant type in Go's type system.
type PseudoElementSelectorArg interface {
	isPseudoElementSelectorArg()
}

func (*PseudoArgIdent) isPseudoElementSelectorArg()            {}
func (*PseudoArgCompoundSelector) isPseudoElementSelectorArg() {}
func (*PseudoArgGeneric) isPseudoElementSelectorArg()          {}

// PseudoElementSelector is `::name` or `::name(arg)`.
type PseudoElementSelector struct {
	Name InterpolableIdent
	Arg  PseudoElementSelectorArg
	Span span.Span
}
