package css_lexer

import "github.com/cssfront/cssfront/internal/span"

// Kind is the tag of a Token. Naming and ordering follow the teacher's own
// `css_lexer.T` enum (iota constants plus a parallel name table), extended
// with the literal-bearing and template-fragment variants this multi-
// dialect tokenizer needs that the teacher's single-dialect lexer doesn't.
type Kind uint8

const (
	TEOF Kind = iota

	// Literal-bearing
	TIdent
	TNumber
	TDimension
	TPercentage
	TString
	THash
	TAtKeyword
	TDollarVar
	TAtLBraceVar
	TUrlPrefix
	TUrlRaw
	TStrTemplate
	TUrlTemplate

	// Layout (Sass only)
	TIndent
	TDedent
	TLinebreak

	// Structural punctuation
	TColon
	TColonColon
	TLBrace
	TRBrace
	TLParen
	TRParen
	TLBracket
	TRBracket
	TComma
	TSemicolon
	TDot
	TAmpersand
	TAsterisk
	TBar
	TBarBar
	TTilde
	TTildeEqual
	TBarEqual
	TCaretEqual
	TDollarEqual
	TAsteriskEqual
	TEqual
	TEqualEqual
	TExclamationEqual
	TGreaterThan
	TGreaterThanEqual
	TLessThan
	TLessThanEqual
	TPlus
	TMinus
	TSolidus
	TPercent
	TNumberSign
	THashLBrace
	TPlusUnderscore
)

var kindNames = [...]string{
	"end of file",
	"identifier",
	"number",
	"dimension",
	"percentage",
	"string",
	"hash token",
	"@-keyword",
	"$-variable",
	"@{...} variable",
	"url(",
	"url token",
	"string template chunk",
	"url template chunk",
	"indent",
	"dedent",
	"linebreak",
	"\":\"",
	"\"::\"",
	"\"{\"",
	"\"}\"",
	"\"(\"",
	"\")\"",
	"\"[\"",
	"\"]\"",
	"\",\"",
	"\";\"",
	"\".\"",
	"\"&\"",
	"\"*\"",
	"\"|\"",
	"\"||\"",
	"\"~\"",
	"\"~=\"",
	"\"|=\"",
	"\"^=\"",
	"\"$=\"",
	"\"*=\"",
	"\"=\"",
	"\"==\"",
	"\"!=\"",
	"\">\"",
	"\">=\"",
	"\"<\"",
	"\"<=\"",
	"\"+\"",
	"\"-\"",
	"\"/\"",
	"\"%\"",
	"\"#\"",
	"\"#{\"",
	"\"+_\"",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown token"
}

// Token is deliberately a single flat struct rather than one type per
// variant: most fields are unused for most kinds, but a flat struct is
// what the teacher's own lexer does for exactly the same tradeoff (see
// css_lexer.Token's own field-ordering comment) and it keeps the scanner
// allocation-free.
type Token struct {
	Span span.Span
	Kind Kind

	// Raw is the verbatim source slice for the token (including quotes,
	// the leading '#', etc. where applicable).
	Raw string

	// Value is the decoded/unescaped payload: an Ident's unescaped name, a
	// Str's unescaped content, a Hash's unescaped name (without '#'), and
	// so on. Delimiters that Raw keeps (quotes, '#', '$', '@', "url(") are
	// not part of Value; apart from those, Value equals Raw whenever the
	// raw slice contains no '\' escape.
	Value string

	// RawWithoutHash is set only for THash: the raw slice without the
	// leading '#', still escaped.
	RawWithoutHash string

	// Num is the parsed IEEE 754 value, set for TNumber, TDimension, and
	// TPercentage.
	Num float64

	// Unit* are set only for TDimension: the unit identifier that follows
	// the number.
	UnitRaw   string
	UnitValue string
	UnitSpan  span.Span

	// Tail is set only for TStrTemplate/TUrlTemplate: true when this chunk
	// is the final one (closed by the terminating quote or ')'), false
	// when an interpolation follows.
	Tail bool
}

// Ident is one scanned identifier sequence. The tokenizer uses it while
// building Ident, Dimension (unit), DollarVar, AtKeyword and @{...} tokens,
// whose Value/Unit fields take its name; the parser builds its own
// css_ast.Ident from token fields instead.
type Ident struct {
	Name string
	Raw  string
	Span span.Span
}

// Comment is block (`/* ... */`) or line (`// ...`, non-CSS dialects
// only) commentary, collected into a caller-provided sink in source order.
// Comments never appear in the token stream.
type Comment struct {
	Block   bool
	Content string
	Span    span.Span
}
