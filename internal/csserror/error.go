// Package csserror defines the single error value type shared by the
// tokenizer and the selector parser. There is no recovery anywhere in this
// codebase: the first error returned by any Tokenizer or Parser method
// aborts the parse, so every error carries enough information (a Kind and
// a Span) for the caller to format a diagnostic without this package
// needing to know anything about source text or formatting.
package csserror

import "github.com/cssfront/cssfront/internal/span"

// Kind is a closed enum of every error this codebase can raise. It's kept
// as one flat enum across lexical, adjacency, structural, numeric, and
// domain errors rather than per-layer error types, mirroring the teacher's
// single `T` token-kind enum idiom applied here to errors instead of
// tokens.
type Kind uint8

const (
	// Lexical
	UnknownToken Kind = iota
	UnexpectedEof
	UnexpectedLinebreak
	InvalidNumber
	InvalidEscape
	InvalidHash
	ExpectRightBraceForLessVar

	// Adjacency
	ExpectNoWsOrComment

	// Structural
	Unexpected
	ExpectWqName
	ExpectAttributeSelectorMatcher
	ExpectAttributeSelectorValue
	ExpectIdSelector
	ExpectSimpleSelector
	ExpectTypeSelector

	// Numeric
	ExpectUnsignedInteger
	ExpectInteger

	// Domain
	InvalidIdSelectorName
	InvalidAnPlusB
)

var kindNames = [...]string{
	"unknown token",
	"unexpected end of file",
	"unexpected linebreak",
	"invalid number",
	"invalid escape",
	"invalid hash",
	"expected '}' to close Less variable",
	"expected no whitespace or comment here",
	"unexpected token",
	"expected a namespaced name",
	"expected an attribute selector matcher",
	"expected an attribute selector value",
	"expected an id selector",
	"expected a simple selector",
	"expected a type selector",
	"expected an unsigned integer",
	"expected an integer",
	"id selector name must not start with a digit",
	"invalid An+B expression",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown error kind"
}

// Error is a value: a Kind plus the Span of the offending token or slice.
// Callers format; this package does not.
type Error struct {
	Kind Kind
	Span span.Span

	// Expected and Got are optional extra context for Kind == Unexpected,
	// mirroring the `Unexpected(expected, got)` variant of spec.md §7.
	Expected string
	Got      string
}

func (e *Error) Error() string {
	if e.Kind == Unexpected && e.Expected != "" {
		if e.Got != "" {
			return "expected " + e.Expected + ", got " + e.Got
		}
		return "expected " + e.Expected
	}
	return e.Kind.String()
}

// New builds an Error with the given kind and span.
func New(kind Kind, s span.Span) *Error {
	return &Error{Kind: kind, Span: s}
}

// Unexpectedf builds an Unexpected error naming what was expected and what
// token text was actually found.
func Unexpectedf(expected, got string, s span.Span) *Error {
	return &Error{Kind: Unexpected, Span: s, Expected: expected, Got: got}
}
