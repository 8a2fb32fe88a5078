// Package css_ast defines the selector-grammar AST: selector lists down
// through simple selectors, An+B, page selectors, and the supporting
// identifier and combinator types. Every "kind" union is a tagged
// interface with an unexported marker method, the same idiom the
// teacher's own css_ast.go uses for its rule and subclass-selector unions
// (isRule(), isSubclassSelector()) rather than a discriminated struct.
package css_ast

import "github.com/cssfront/cssfront/internal/span"

// Ident is a plain, non-interpolated identifier.
type Ident struct {
	Name string
	Raw  string
	Span span.Span
}

// InterpolableIdent is an identifier that may be spliced together from
// literal text and SCSS/Sass `#{...}` or Less `@{...}` interpolations.
// This interface is never called; its purpose is to encode a variant type
// in Go's type system.
type InterpolableIdent interface {
	isInterpolableIdent()
}

// LiteralIdent is an ordinary identifier with no interpolation.
type LiteralIdent struct {
	Ident Ident
}

func (*LiteralIdent) isInterpolableIdent() {}

// SassInterpolatedIdentElement is one piece of a SassInterpolatedIdent:
// either a literal run of text or an opaque interpolated expression.
type SassInterpolatedIdentElement interface {
	isSassInterpolatedIdentElement()
}

// StaticIdentPart is a literal text run between interpolations. It is
// shared between the Sass and Less interpolated-ident forms.
type StaticIdentPart struct {
	Value string
	Raw   string
	Span  span.Span
}

func (*StaticIdentPart) isSassInterpolatedIdentElement() {}
func (*StaticIdentPart) isLessInterpolatedIdentElement() {}

// ExprIdentPart is a `#{...}` interpolation's body. The value/expression
// parsers that would give this body structure are out of scope here, so
// the raw source between the braces is kept verbatim and otherwise
// unparsed, matching the declared scope boundary around full expression
// grammar.
type ExprIdentPart struct {
	Raw  string
	Span span.Span
}

func (*ExprIdentPart) isSassInterpolatedIdentElement() {}

// SassInterpolatedIdent is an identifier containing one or more SCSS/Sass
// `#{...}` interpolations, e.g. `.icon-#{$name}`.
type SassInterpolatedIdent struct {
	Elements []SassInterpolatedIdentElement
	Span     span.Span
}

func (*SassInterpolatedIdent) isInterpolableIdent() {}

// LessInterpolatedIdentElement mirrors SassInterpolatedIdentElement for
// Less's `@{name}` interpolation form.
type LessInterpolatedIdentElement interface {
	isLessInterpolatedIdentElement()
}

// LessVariableIdentPart is one `@{name}` reference inside an identifier.
type LessVariableIdentPart struct {
	Name string
	Span span.Span
}

func (*LessVariableIdentPart) isLessInterpolatedIdentElement() {}

// LessInterpolatedIdent is an identifier containing one or more Less
// `@{name}` interpolations, e.g. `.icon-@{name}`.
type LessInterpolatedIdent struct {
	Elements []LessInterpolatedIdentElement
	Span     span.Span
}

func (*LessInterpolatedIdent) isInterpolableIdent() {}

// InterpolableIdentSpan returns the source span of any InterpolableIdent variant.
func InterpolableIdentSpan(n InterpolableIdent) span.Span {
	switch v := n.(type) {
	case *LiteralIdent:
		return v.Ident.Span
	case *SassInterpolatedIdent:
		return v.Span
	case *LessInterpolatedIdent:
		return v.Span
	default:
		return span.Span{}
	}
}
