package css_ast

import "github.com/cssfront/cssfront/internal/span"

// SelectorList is a comma-separated, non-empty list of ComplexSelectors.
type SelectorList struct {
	Selectors []ComplexSelector
	Span      span.Span
}

// ComplexSelectorChild is either a CompoundSelector or a Combinator; a
// ComplexSelector alternates the two, always starting and ending with a
// CompoundSelector. This interface is never called; its purpose is to
// encode a variant type in Go's type system.
type ComplexSelectorChild interface {
	isComplexSelectorChild()
}

func (*CompoundSelector) isComplexSelectorChild() {}
func (*Combinator) isComplexSelectorChild()       {}

// ComplexSelectorChildSpan returns the span of either alternative.
func ComplexSelectorChildSpan(c ComplexSelectorChild) span.Span {
	switch v := c.(type) {
	case *CompoundSelector:
		return v.Span
	case *Combinator:
		return v.Span
	default:
		return span.Span{}
	}
}

// ComplexSelector is a sequence of compound selectors separated by
// combinators.
type ComplexSelector struct {
	Children []ComplexSelectorChild
	Span     span.Span
}

// CompoundSelector is one or more adjacent simple selectors that share a
// subject element.
type CompoundSelector struct {
	Children []SimpleSelector
	Span     span.Span
}

// CompoundSelectorList is a comma-separated, non-empty list of
// CompoundSelectors (the argument of e.g. `:-webkit-any()` and `:current()`).
type CompoundSelectorList struct {
	Selectors []CompoundSelector
	Span      span.Span
}

// SimpleSelector is one of the selector leaf forms. This interface is
// never called; its purpose is to encode a variant type in Go's type
// system.
type SimpleSelector interface {
	isSimpleSelector()
}

type ClassSelector struct {
	Name InterpolableIdent
	Span span.Span
}

func (*ClassSelector) isSimpleSelector() {}

type IdSelector struct {
	Name InterpolableIdent
	Span span.Span
}

func (*IdSelector) isSimpleSelector() {}

// TypeSelector is a tag-name or universal (`*`) selector, with optional
// namespace prefix. This interface is never called; its purpose is to
// encode a variant type in Go's type system.
type TypeSelector interface {
	isTypeSelector()
	isSimpleSelector()
}

type TagNameSelector struct {
	Name WqName
	Span span.Span
}

func (*TagNameSelector) isTypeSelector()   {}
func (*TagNameSelector) isSimpleSelector() {}

type UniversalSelector struct {
	Prefix *NsPrefix
	Span   span.Span
}

func (*UniversalSelector) isTypeSelector()   {}
func (*UniversalSelector) isSimpleSelector() {}

// NestingSelector is the `&` nesting reference.
type NestingSelector struct {
	Span span.Span
}

func (*NestingSelector) isSimpleSelector() {}

// SassPlaceholderSelector is SCSS/Sass's `%name` placeholder selector.
type SassPlaceholderSelector struct {
	Name InterpolableIdent
	Span span.Span
}

func (*SassPlaceholderSelector) isSimpleSelector() {}

func (*PseudoClassSelector) isSimpleSelector()   {}
func (*PseudoElementSelector) isSimpleSelector() {}

// RelativeSelector is an optional leading combinator followed by a
// complex selector, used as the argument of `:has(...)`.
type RelativeSelector struct {
	Combinator *Combinator
	Selector   ComplexSelector
	Span       span.Span
}

// RelativeSelectorList is a comma-separated, non-empty list of
// RelativeSelectors.
type RelativeSelectorList struct {
	Selectors []RelativeSelector
	Span      span.Span
}
