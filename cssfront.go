// Package cssfront is the thin public entry point over this module's
// internal tokenizer and selector parser, mirroring the teacher's own
// pkg/api wrapping of its internal packages.
package cssfront

import (
	"github.com/cssfront/cssfront/internal/css_ast"
	"github.com/cssfront/cssfront/internal/css_lexer"
	"github.com/cssfront/cssfront/internal/css_parser"
	"github.com/cssfront/cssfront/internal/cssconfig"
)

// Syntax selects which of the four overlapping dialects governs tokenizing
// and parsing.
type Syntax = cssconfig.Syntax

const (
	Css  = cssconfig.Css
	Scss = cssconfig.Scss
	Sass = cssconfig.Sass
	Less = cssconfig.Less
)

// Config is the external configuration surface for Tokenize/NewParser:
// a plain value with enumerated options and nothing else.
type Config = cssconfig.Config

// Token and Kind re-export the lexer's token representation so callers
// driving Tokenize directly never need to import internal/css_lexer.
type Token = css_lexer.Token
type Kind = css_lexer.Kind
type Comment = css_lexer.Comment

// Tokenize runs source through the tokenizer to completion, returning every
// token up to and including the final TEOF, plus any comments encountered
// along the way. The first error aborts and returns the tokens produced so
// far.
func Tokenize(source string, cfg Config) ([]Token, []Comment, error) {
	var comments []Comment
	tokenizer := css_lexer.NewTokenizer(source, cfg, &comments)
	var tokens []Token
	for {
		tok, err := tokenizer.Bump()
		if err != nil {
			return tokens, comments, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == css_lexer.TEOF {
			return tokens, comments, nil
		}
	}
}

// ParseSelectorList parses source as a single comma-separated selector
// list, e.g. a qualified rule's prelude (`a.b, c > d`).
func ParseSelectorList(source string, cfg Config) (css_ast.SelectorList, error) {
	p := css_parser.NewParser(source, cfg, nil)
	return p.ParseSelectorList()
}

// ParsePageSelectorList parses source as a @page rule's selector list
// (`:first, narrow`).
func ParsePageSelectorList(source string, cfg Config) (css_ast.PageSelectorList, error) {
	p := css_parser.NewParser(source, cfg, nil)
	return p.ParsePageSelectorList()
}

// NewParser builds a Parser over source for callers that need to drive
// additional selector-grammar entry points directly (RelativeSelectorList,
// CompoundSelectorList, and so on).
func NewParser(source string, cfg Config, comments *[]Comment) *css_parser.Parser {
	return css_parser.NewParser(source, cfg, comments)
}
