// Package css_parser implements the recursive-descent selector parser:
// SelectorList down through simple selectors, An+B, and page selectors.
// Declaration, value, and at-rule-body grammars are out of scope; this
// package only needs enough of the tokenizer's contract (peek/bump/
// current offset) to drive selector parsing, mirroring how the teacher's
// own css_parser builds directly on css_lexer's Tokenizer.
package css_parser

import (
	"github.com/cssfront/cssfront/internal/cssconfig"
	"github.com/cssfront/cssfront/internal/css_lexer"
	"github.com/cssfront/cssfront/internal/csserror"
	"github.com/cssfront/cssfront/internal/span"
)

// Parser drives a css_lexer.Tokenizer through the selector grammar. It
// holds no lookahead buffer of its own: every production peeks or bumps
// the tokenizer directly, exactly as the tokenizer's own contract intends.
type Parser struct {
	tokenizer *css_lexer.Tokenizer
	syntax    cssconfig.Syntax
}

// NewParser builds a Parser over source. comments, when non-nil, collects
// block/line comments encountered while tokenizing.
func NewParser(source string, cfg cssconfig.Config, comments *[]css_lexer.Comment) *Parser {
	return &Parser{
		tokenizer: css_lexer.NewTokenizer(source, cfg, comments),
		syntax:    cfg.Syntax,
	}
}

// assertNoWsOrComment succeeds when prev and next are byte-contiguous in
// source (no whitespace or comment consumed between them), else fails
// with ExpectNoWsOrComment. Every adjacency point in this package calls it
// after the next token has been consumed, passing that token's span as
// next, so on failure the offending token is already consumed.
func assertNoWsOrComment(prev, next span.Span) error {
	if prev.End != next.Start {
		return csserror.New(csserror.ExpectNoWsOrComment, span.Span{Start: prev.End, End: next.Start})
	}
	return nil
}

// tryParse snapshots the tokenizer, runs p, and restores the snapshot if
// p fails, so the caller can try a different production from the same
// starting point. No selector production in this package calls it.
func tryParse[T any](p *Parser, f func() (T, error)) (T, error) {
	snap := p.tokenizer.Snap()
	v, err := f()
	if err != nil {
		p.tokenizer.Restore(snap)
	}
	return v, err
}

func unexpected(expected string, tok css_lexer.Token) error {
	return csserror.Unexpectedf(expected, tok.Kind.String(), tok.Span)
}
