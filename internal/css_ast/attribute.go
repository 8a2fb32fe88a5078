package css_ast

import "github.com/cssfront/cssfront/internal/span"

type NsPrefixKind uint8

const (
	NsPrefixNone NsPrefixKind = iota
	NsPrefixIdent
	NsPrefixUniversal
)

// NsPrefix is a WqName's optional namespace: `ns|`, `*|`, or bare `|`.
type NsPrefix struct {
	Kind  NsPrefixKind
	Ident InterpolableIdent // set only when Kind == NsPrefixIdent
	Span  span.Span
}

// WqName ("whole-qualified name") is an identifier with an optional
// namespace prefix.
type WqName struct {
	Prefix *NsPrefix
	Name   InterpolableIdent
	Span   span.Span
}

type AttributeSelectorMatcherKind uint8

const (
	MatchEquals AttributeSelectorMatcherKind = iota
	MatchTilde
	MatchBar
	MatchCaret
	MatchDollar
	MatchAsterisk
)

type AttributeSelectorMatcher struct {
	Kind AttributeSelectorMatcherKind
	Span span.Span
}

// AttributeSelectorValue is either a bare ident or a quoted string. This
// interface is never called; its purpose is to encode a variant type in
// Go's type system.
type AttributeSelectorValue interface {
	isAttributeSelectorValue()
}

type AttrValueIdent struct{ Ident InterpolableIdent }

func (*AttrValueIdent) isAttributeSelectorValue() {}

type AttrValueStr struct {
	Value string
	Raw   string
	Span  span.Span
}

func (*AttrValueStr) isAttributeSelectorValue() {}

type AttributeSelectorModifier struct {
	Ident InterpolableIdent
	Span  span.Span
}

// AttributeSelector is `[name matcher? value? modifier?]`.
type AttributeSelector struct {
	Name     WqName
	Matcher  *AttributeSelectorMatcher
	Value    AttributeSelectorValue
	Modifier *AttributeSelectorModifier
	Span     span.Span
}

func (*AttributeSelector) isSimpleSelector() {}
