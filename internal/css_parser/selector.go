package css_parser

import (
	"strconv"
	"strings"

	"github.com/cssfront/cssfront/internal/css_ast"
	"github.com/cssfront/cssfront/internal/css_lexer"
	"github.com/cssfront/cssfront/internal/cssconfig"
	"github.com/cssfront/cssfront/internal/csserror"
	"github.com/cssfront/cssfront/internal/span"
)

func (p *Parser) bump() (css_lexer.Token, error) { return p.tokenizer.Bump() }
func (p *Parser) peek() (css_lexer.Token, error) { return p.tokenizer.Peek() }

// CurrentOffset exposes the tokenizer's current offset for callers (e.g.
// collaborator parsers for out-of-scope grammars) that need to perform
// their own adjacency checks.
func (p *Parser) CurrentOffset() int { return p.tokenizer.CurrentOffset() }

func (p *Parser) expect(kind css_lexer.Kind, expected string) (css_lexer.Token, error) {
	tok, err := p.bump()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, unexpected(expected, tok)
	}
	return tok, nil
}

// parseCommaList parses a non-empty, comma-separated list of T, computing
// the list's span from the first element's start to the last element's
// end. Every *List production in the grammar (SelectorList,
// CompoundSelectorList, RelativeSelectorList, LanguageRangeList,
// PageSelectorList) shares exactly this shape.
func parseCommaList[T any](p *Parser, parseOne func() (T, error), spanOf func(T) span.Span) ([]T, span.Span, error) {
	first, err := parseOne()
	if err != nil {
		return nil, span.Span{}, err
	}
	sp := spanOf(first)
	items := []T{first}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, span.Span{}, err
		}
		if tok.Kind != css_lexer.TComma {
			break
		}
		if _, err := p.bump(); err != nil {
			return nil, span.Span{}, err
		}
		next, err := parseOne()
		if err != nil {
			return nil, span.Span{}, err
		}
		items = append(items, next)
	}
	sp.End = spanOf(items[len(items)-1]).End
	return items, sp, nil
}

// ParseSelectorList parses a comma-separated list of complex selectors,
// e.g. the prelude of a qualified rule: `a.b, c > d`.
func (p *Parser) ParseSelectorList() (css_ast.SelectorList, error) {
	items, sp, err := parseCommaList(p, p.parseComplexSelector, func(c css_ast.ComplexSelector) span.Span { return c.Span })
	if err != nil {
		return css_ast.SelectorList{}, err
	}
	return css_ast.SelectorList{Selectors: items, Span: sp}, nil
}

func (p *Parser) parseComplexSelector() (css_ast.ComplexSelector, error) {
	first, err := p.parseCompoundSelector()
	if err != nil {
		return css_ast.ComplexSelector{}, err
	}
	sp := first.Span
	children := []css_ast.ComplexSelectorChild{&first}

	for {
		combinator, err := p.parseCombinator()
		if err != nil {
			return css_ast.ComplexSelector{}, err
		}
		if combinator == nil {
			break
		}
		children = append(children, combinator)
		next, err := p.parseCompoundSelector()
		if err != nil {
			return css_ast.ComplexSelector{}, err
		}
		children = append(children, &next)
	}

	sp.End = css_ast.ComplexSelectorChildSpan(children[len(children)-1]).End
	return css_ast.ComplexSelector{Children: children, Span: sp}, nil
}

// simpleSelectorStarts reports the token kinds a CompoundSelector's
// trailing simple selectors may begin with, used by both CompoundSelector
// (to decide whether to keep appending) and parseCombinator (to decide
// whether a gap implies a Descendant combinator).
func simpleSelectorStarts(k css_lexer.Kind) bool {
	switch k {
	case css_lexer.TDot, css_lexer.THash, css_lexer.TColon, css_lexer.TColonColon,
		css_lexer.TAmpersand, css_lexer.TIdent, css_lexer.TAsterisk,
		css_lexer.THashLBrace, css_lexer.TNumberSign, css_lexer.TBar:
		return true
	default:
		return false
	}
}

func (p *Parser) parseCompoundSelector() (css_ast.CompoundSelector, error) {
	first, err := p.parseSimpleSelector()
	if err != nil {
		return css_ast.CompoundSelector{}, err
	}
	sp := simpleSelectorSpan(first)
	children := []css_ast.SimpleSelector{first}

	for {
		tok, err := p.peek()
		if err != nil {
			return css_ast.CompoundSelector{}, err
		}
		if !simpleSelectorStarts(tok.Kind) || p.tokenizer.CurrentOffset() != tok.Span.Start {
			break
		}
		next, err := p.parseSimpleSelector()
		if err != nil {
			return css_ast.CompoundSelector{}, err
		}
		children = append(children, next)
	}

	sp.End = simpleSelectorSpan(children[len(children)-1]).End
	return css_ast.CompoundSelector{Children: children, Span: sp}, nil
}

func (p *Parser) ParseCompoundSelectorList() (css_ast.CompoundSelectorList, error) {
	items, sp, err := parseCommaList(p, p.parseCompoundSelector, func(c css_ast.CompoundSelector) span.Span { return c.Span })
	if err != nil {
		return css_ast.CompoundSelectorList{}, err
	}
	return css_ast.CompoundSelectorList{Selectors: items, Span: sp}, nil
}

func (p *Parser) parseRelativeSelector() (css_ast.RelativeSelector, error) {
	combinator, err := p.parseCombinator()
	if err != nil {
		return css_ast.RelativeSelector{}, err
	}
	complex, err := p.parseComplexSelector()
	if err != nil {
		return css_ast.RelativeSelector{}, err
	}
	sp := complex.Span
	if combinator != nil {
		sp.Start = combinator.Span.Start
	}
	return css_ast.RelativeSelector{Combinator: combinator, Selector: complex, Span: sp}, nil
}

func (p *Parser) ParseRelativeSelectorList() (css_ast.RelativeSelectorList, error) {
	items, sp, err := parseCommaList(p, p.parseRelativeSelector, func(c css_ast.RelativeSelector) span.Span { return c.Span })
	if err != nil {
		return css_ast.RelativeSelectorList{}, err
	}
	return css_ast.RelativeSelectorList{Selectors: items, Span: sp}, nil
}

// parseCombinator looks for an explicit combinator token (`>`, `+`, `~`,
// `||`), or, failing that, infers a Descendant combinator from a gap
// between the current offset and the next compound-selector-initial
// token. Returns (nil, nil) when no combinator is present (end of the
// complex selector).
func (p *Parser) parseCombinator() (*css_ast.Combinator, error) {
	offset := p.tokenizer.CurrentOffset()
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case css_lexer.TGreaterThan:
		p.bump()
		return &css_ast.Combinator{Kind: css_ast.Child, Span: tok.Span}, nil
	case css_lexer.TPlus:
		p.bump()
		return &css_ast.Combinator{Kind: css_ast.NextSibling, Span: tok.Span}, nil
	case css_lexer.TTilde:
		p.bump()
		return &css_ast.Combinator{Kind: css_ast.LaterSibling, Span: tok.Span}, nil
	case css_lexer.TBarBar:
		p.bump()
		return &css_ast.Combinator{Kind: css_ast.Column, Span: tok.Span}, nil
	}

	if simpleSelectorStarts(tok.Kind) && offset < tok.Span.Start {
		return &css_ast.Combinator{Kind: css_ast.Descendant, Span: span.Span{Start: offset, End: tok.Span.Start}}, nil
	}
	return nil, nil
}

func (p *Parser) parseSimpleSelector() (css_ast.SimpleSelector, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case css_lexer.TDot:
		return p.parseClassSelector()
	case css_lexer.THash, css_lexer.TNumberSign:
		return p.parseIdSelector()
	case css_lexer.TLBracket:
		return p.parseAttributeSelector()
	case css_lexer.TColon:
		return p.parsePseudoClassSelector()
	case css_lexer.TColonColon:
		return p.parsePseudoElementSelector()
	case css_lexer.TIdent, css_lexer.TAsterisk, css_lexer.THashLBrace, css_lexer.TBar:
		return p.parseTypeSelector()
	case css_lexer.TAmpersand:
		return p.parseNestingSelector()
	case css_lexer.TPercent:
		if p.syntax.IsScssOrSass() {
			return p.parseSassPlaceholderSelector()
		}
		return nil, csserror.New(csserror.ExpectSimpleSelector, tok.Span)
	default:
		return nil, csserror.New(csserror.ExpectSimpleSelector, tok.Span)
	}
}

func simpleSelectorSpan(s css_ast.SimpleSelector) span.Span {
	switch v := s.(type) {
	case *css_ast.ClassSelector:
		return v.Span
	case *css_ast.IdSelector:
		return v.Span
	case *css_ast.AttributeSelector:
		return v.Span
	case *css_ast.PseudoClassSelector:
		return v.Span
	case *css_ast.PseudoElementSelector:
		return v.Span
	case *css_ast.TagNameSelector:
		return v.Span
	case *css_ast.UniversalSelector:
		return v.Span
	case *css_ast.NestingSelector:
		return v.Span
	case *css_ast.SassPlaceholderSelector:
		return v.Span
	default:
		return span.Span{}
	}
}

func (p *Parser) parseClassSelector() (*css_ast.ClassSelector, error) {
	dot, err := p.expect(css_lexer.TDot, "'.'")
	if err != nil {
		return nil, err
	}
	ident, err := p.parseInterpolableIdent()
	if err != nil {
		return nil, err
	}
	identSpan := css_ast.InterpolableIdentSpan(ident)
	if err := assertNoWsOrComment(dot.Span, identSpan); err != nil {
		return nil, err
	}
	return &css_ast.ClassSelector{Name: ident, Span: span.Span{Start: dot.Span.Start, End: identSpan.End}}, nil
}

func (p *Parser) parseSassPlaceholderSelector() (*css_ast.SassPlaceholderSelector, error) {
	percent, err := p.expect(css_lexer.TPercent, "'%'")
	if err != nil {
		return nil, err
	}
	ident, err := p.parseInterpolableIdent()
	if err != nil {
		return nil, err
	}
	identSpan := css_ast.InterpolableIdentSpan(ident)
	if err := assertNoWsOrComment(percent.Span, identSpan); err != nil {
		return nil, err
	}
	return &css_ast.SassPlaceholderSelector{Name: ident, Span: span.Span{Start: percent.Span.Start, End: identSpan.End}}, nil
}

func (p *Parser) parseNestingSelector() (*css_ast.NestingSelector, error) {
	tok, err := p.expect(css_lexer.TAmpersand, "'&'")
	if err != nil {
		return nil, err
	}
	return &css_ast.NestingSelector{Span: tok.Span}, nil
}

// parseIdSelector handles both the fused-Hash form (`#foo`, one token)
// and the split NumberSign-then-ident form produced when an interpolation
// (`#{` or Less `@{`) is the first thing after `#`.
func (p *Parser) parseIdSelector() (*css_ast.IdSelector, error) {
	tok, err := p.bump()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case css_lexer.THash:
		firstSpan := span.Span{Start: tok.Span.Start + 1, End: tok.Span.End}
		if len(tok.Value) > 0 && tok.Value[0] >= '0' && tok.Value[0] <= '9' {
			return nil, csserror.New(csserror.InvalidIdSelectorName, firstSpan)
		}
		first := css_ast.Ident{Name: tok.Value, Raw: tok.RawWithoutHash, Span: firstSpan}

		name, err := p.continueSassInterpolationAfterLiteral(first)
		if err != nil {
			return nil, err
		}
		nameSpan := css_ast.InterpolableIdentSpan(name)
		return &css_ast.IdSelector{Name: name, Span: span.Span{Start: tok.Span.Start, End: nameSpan.End}}, nil

	case css_lexer.TNumberSign:
		name, err := p.parseInterpolableIdent()
		if err != nil {
			return nil, err
		}
		nameSpan := css_ast.InterpolableIdentSpan(name)
		if err := assertNoWsOrComment(tok.Span, nameSpan); err != nil {
			return nil, err
		}
		return &css_ast.IdSelector{Name: name, Span: span.Span{Start: tok.Span.Start, End: nameSpan.End}}, nil

	default:
		return nil, csserror.New(csserror.ExpectIdSelector, tok.Span)
	}
}

// continueSassInterpolationAfterLiteral checks whether a just-parsed
// literal ident (first) is immediately followed by a SCSS/Sass `#{`
// interpolation, and if so folds first in as the interpolated ident's
// leading static part; otherwise first stands alone as a LiteralIdent.
func (p *Parser) continueSassInterpolationAfterLiteral(first css_ast.Ident) (css_ast.InterpolableIdent, error) {
	if p.syntax.IsScssOrSass() {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == css_lexer.THashLBrace && first.Span.End == tok.Span.Start {
			rest, err := p.parseInterpolableIdent()
			if err != nil {
				return nil, err
			}
			interp, ok := rest.(*css_ast.SassInterpolatedIdent)
			if !ok {
				return nil, csserror.New(csserror.Unexpected, tok.Span)
			}
			elements := append([]css_ast.SassInterpolatedIdentElement{
				&css_ast.StaticIdentPart{Value: first.Name, Raw: first.Raw, Span: first.Span},
			}, interp.Elements...)
			return &css_ast.SassInterpolatedIdent{Elements: elements, Span: span.Span{Start: first.Span.Start, End: interp.Span.End}}, nil
		}
	}
	return &css_ast.LiteralIdent{Ident: first}, nil
}

// parseInterpolableIdent parses a possibly-interpolated identifier:
// a plain Ident token, or (SCSS/Sass) a run of Ident/HashLBrace-expr-RBrace
// pieces, or (Less) a run of Ident/AtLBraceVar pieces. Pieces must be
// byte-adjacent to fuse into one InterpolableIdent; a gap ends the run.
func (p *Parser) parseInterpolableIdent() (css_ast.InterpolableIdent, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == css_lexer.TIdent:
		p.bump()
		ident := css_ast.Ident{Name: tok.Value, Raw: tok.Raw, Span: tok.Span}
		if p.syntax.IsScssOrSass() {
			return p.continueSassInterpolationAfterLiteral(ident)
		}
		if p.syntax == cssconfig.Less {
			return p.continueLessInterpolationAfterLiteral(ident)
		}
		return &css_ast.LiteralIdent{Ident: ident}, nil

	case tok.Kind == css_lexer.THashLBrace && p.syntax.IsScssOrSass():
		return p.parseSassInterpolatedIdent()

	case tok.Kind == css_lexer.TAtLBraceVar && p.syntax == cssconfig.Less:
		return p.parseLessInterpolatedIdent()

	default:
		return nil, csserror.New(csserror.Unexpected, tok.Span)
	}
}

func (p *Parser) parseSassInterpolatedIdent() (css_ast.InterpolableIdent, error) {
	first, firstSpan, err := p.parseSassExprIdentPart()
	if err != nil {
		return nil, err
	}
	elements := []css_ast.SassInterpolatedIdentElement{first}
	end := firstSpan.End

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == css_lexer.TIdent && tok.Span.Start == end {
			p.bump()
			elements = append(elements, &css_ast.StaticIdentPart{Value: tok.Value, Raw: tok.Raw, Span: tok.Span})
			end = tok.Span.End
			continue
		}
		if tok.Kind == css_lexer.THashLBrace && tok.Span.Start == end {
			part, partSpan, err := p.parseSassExprIdentPart()
			if err != nil {
				return nil, err
			}
			elements = append(elements, part)
			end = partSpan.End
			continue
		}
		break
	}

	return &css_ast.SassInterpolatedIdent{Elements: elements, Span: span.Span{Start: firstSpan.Start, End: end}}, nil
}

// parseSassExprIdentPart consumes one `#{ ... }` run with balanced
// braces, returning it as an opaque ExprIdentPart (the full expression
// grammar that would structure its contents is out of scope here).
func (p *Parser) parseSassExprIdentPart() (css_ast.SassInterpolatedIdentElement, span.Span, error) {
	open, err := p.expect(css_lexer.THashLBrace, "'#{'")
	if err != nil {
		return nil, span.Span{}, err
	}
	start := open.Span.Start
	depth := 1
	var lastEnd int
	for depth > 0 {
		tok, err := p.bump()
		if err != nil {
			return nil, span.Span{}, err
		}
		switch tok.Kind {
		case css_lexer.TLBrace, css_lexer.THashLBrace:
			depth++
		case css_lexer.TRBrace:
			depth--
		case css_lexer.TEOF:
			return nil, span.Span{}, csserror.New(csserror.UnexpectedEof, tok.Span)
		}
		lastEnd = tok.Span.End
	}
	sp := span.Span{Start: start, End: lastEnd}
	return &css_ast.ExprIdentPart{Raw: p.tokenizer.Source()[start:lastEnd], Span: sp}, sp, nil
}

func (p *Parser) continueLessInterpolationAfterLiteral(first css_ast.Ident) (css_ast.InterpolableIdent, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != css_lexer.TAtLBraceVar || tok.Span.Start != first.Span.End {
		return &css_ast.LiteralIdent{Ident: first}, nil
	}
	rest, err := p.parseLessInterpolatedIdent()
	if err != nil {
		return nil, err
	}
	interp := rest.(*css_ast.LessInterpolatedIdent)
	elements := append([]css_ast.LessInterpolatedIdentElement{
		&css_ast.StaticIdentPart{Value: first.Name, Raw: first.Raw, Span: first.Span},
	}, interp.Elements...)
	return &css_ast.LessInterpolatedIdent{Elements: elements, Span: span.Span{Start: first.Span.Start, End: interp.Span.End}}, nil
}

func (p *Parser) parseLessInterpolatedIdent() (css_ast.InterpolableIdent, error) {
	tok, err := p.expect(css_lexer.TAtLBraceVar, "'@{...}'")
	if err != nil {
		return nil, err
	}
	elements := []css_ast.LessInterpolatedIdentElement{&css_ast.LessVariableIdentPart{Name: tok.Value, Span: tok.Span}}
	end := tok.Span.End
	start := tok.Span.Start

	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Kind == css_lexer.TIdent && next.Span.Start == end {
			p.bump()
			elements = append(elements, &css_ast.StaticIdentPart{Value: next.Value, Raw: next.Raw, Span: next.Span})
			end = next.Span.End
			continue
		}
		if next.Kind == css_lexer.TAtLBraceVar && next.Span.Start == end {
			p.bump()
			elements = append(elements, &css_ast.LessVariableIdentPart{Name: next.Value, Span: next.Span})
			end = next.Span.End
			continue
		}
		break
	}

	return &css_ast.LessInterpolatedIdent{Elements: elements, Span: span.Span{Start: start, End: end}}, nil
}

// --- type selectors and wq-names ------------------------------------------

func (p *Parser) parseTypeSelector() (css_ast.TypeSelector, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	var identOrAsterisk interface{} // css_ast.InterpolableIdent | css_lexer.Token(asterisk) | nil
	switch tok.Kind {
	case css_lexer.TIdent, css_lexer.THashLBrace:
		ident, err := p.parseInterpolableIdent()
		if err != nil {
			return nil, err
		}
		identOrAsterisk = ident
	case css_lexer.TAsterisk:
		p.bump()
		identOrAsterisk = tok
	case css_lexer.TBar:
		identOrAsterisk = nil
	default:
		return nil, csserror.New(csserror.ExpectTypeSelector, tok.Span)
	}

	bar, err := p.peek()
	if err != nil {
		return nil, err
	}

	adjacentOrAbsent := true
	if identOrAsterisk != nil {
		var prevEnd int
		switch v := identOrAsterisk.(type) {
		case css_ast.InterpolableIdent:
			prevEnd = css_ast.InterpolableIdentSpan(v).End
		case css_lexer.Token:
			prevEnd = v.Span.End
		}
		adjacentOrAbsent = bar.Kind == css_lexer.TBar && prevEnd == bar.Span.Start
	}

	if bar.Kind == css_lexer.TBar && adjacentOrAbsent {
		p.bump()
		var prefix css_ast.NsPrefix
		switch v := identOrAsterisk.(type) {
		case css_ast.InterpolableIdent:
			sp := css_ast.InterpolableIdentSpan(v)
			prefix = css_ast.NsPrefix{Kind: css_ast.NsPrefixIdent, Ident: v, Span: span.Span{Start: sp.Start, End: bar.Span.End}}
		case css_lexer.Token:
			prefix = css_ast.NsPrefix{Kind: css_ast.NsPrefixUniversal, Span: span.Span{Start: v.Span.Start, End: bar.Span.End}}
		default:
			prefix = css_ast.NsPrefix{Kind: css_ast.NsPrefixNone, Span: bar.Span}
		}

		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch next.Kind {
		case css_lexer.TIdent, css_lexer.THashLBrace:
			name, err := p.parseInterpolableIdent()
			if err != nil {
				return nil, err
			}
			nameSpan := css_ast.InterpolableIdentSpan(name)
			if err := assertNoWsOrComment(prefix.Span, nameSpan); err != nil {
				return nil, err
			}
			sp := span.Span{Start: prefix.Span.Start, End: nameSpan.End}
			return &css_ast.TagNameSelector{Name: css_ast.WqName{Name: name, Prefix: &prefix, Span: sp}, Span: sp}, nil
		case css_lexer.TAsterisk:
			p.bump()
			if err := assertNoWsOrComment(prefix.Span, next.Span); err != nil {
				return nil, err
			}
			sp := span.Span{Start: prefix.Span.Start, End: next.Span.End}
			return &css_ast.UniversalSelector{Prefix: &prefix, Span: sp}, nil
		default:
			return nil, csserror.New(csserror.ExpectTypeSelector, next.Span)
		}
	}

	switch v := identOrAsterisk.(type) {
	case css_ast.InterpolableIdent:
		sp := css_ast.InterpolableIdentSpan(v)
		return &css_ast.TagNameSelector{Name: css_ast.WqName{Name: v, Span: sp}, Span: sp}, nil
	case css_lexer.Token:
		return &css_ast.UniversalSelector{Span: v.Span}, nil
	default:
		return nil, csserror.New(csserror.ExpectTypeSelector, tok.Span)
	}
}

// parseWqName parses the `[name]`-position WqName inside an
// AttributeSelector: `ns|name`, `*|name`, `|name`, or bare `name`.
func (p *Parser) parseWqName() (css_ast.WqName, error) {
	tok, err := p.bump()
	if err != nil {
		return css_ast.WqName{}, err
	}

	switch tok.Kind {
	case css_lexer.TIdent, css_lexer.THashLBrace:
		var ident css_ast.InterpolableIdent
		if tok.Kind == css_lexer.TIdent {
			i := css_ast.Ident{Name: tok.Value, Raw: tok.Raw, Span: tok.Span}
			if p.syntax.IsScssOrSass() {
				ident, err = p.continueSassInterpolationAfterLiteral(i)
			} else if p.syntax == cssconfig.Less {
				ident, err = p.continueLessInterpolationAfterLiteral(i)
			} else {
				ident = &css_ast.LiteralIdent{Ident: i}
			}
		} else {
			ident, err = p.parseSassInterpolatedIdentStartingAt(tok)
		}
		if err != nil {
			return css_ast.WqName{}, err
		}
		identSpan := css_ast.InterpolableIdentSpan(ident)

		bar, err := p.peek()
		if err != nil {
			return css_ast.WqName{}, err
		}
		if bar.Kind == css_lexer.TBar {
			p.bump()
			if err := assertNoWsOrComment(identSpan, bar.Span); err != nil {
				return css_ast.WqName{}, err
			}
			name, err := p.parseInterpolableIdent()
			if err != nil {
				return css_ast.WqName{}, err
			}
			nameSpan := css_ast.InterpolableIdentSpan(name)
			if err := assertNoWsOrComment(bar.Span, nameSpan); err != nil {
				return css_ast.WqName{}, err
			}
			prefix := css_ast.NsPrefix{Kind: css_ast.NsPrefixIdent, Ident: ident, Span: span.Span{Start: identSpan.Start, End: bar.Span.End}}
			return css_ast.WqName{Name: name, Prefix: &prefix, Span: span.Span{Start: identSpan.Start, End: nameSpan.End}}, nil
		}
		return css_ast.WqName{Name: ident, Span: identSpan}, nil

	case css_lexer.TAsterisk:
		barTok, err := p.expect(css_lexer.TBar, "'|'")
		if err != nil {
			return css_ast.WqName{}, err
		}
		name, err := p.parseInterpolableIdent()
		if err != nil {
			return css_ast.WqName{}, err
		}
		nameSpan := css_ast.InterpolableIdentSpan(name)
		prefix := css_ast.NsPrefix{Kind: css_ast.NsPrefixUniversal, Span: span.Span{Start: tok.Span.Start, End: barTok.Span.End}}
		return css_ast.WqName{Name: name, Prefix: &prefix, Span: span.Span{Start: tok.Span.Start, End: nameSpan.End}}, nil

	case css_lexer.TBar:
		name, err := p.parseInterpolableIdent()
		if err != nil {
			return css_ast.WqName{}, err
		}
		nameSpan := css_ast.InterpolableIdentSpan(name)
		prefix := css_ast.NsPrefix{Kind: css_ast.NsPrefixNone, Span: span.Span{Start: tok.Span.Start, End: tok.Span.End}}
		return css_ast.WqName{Name: name, Prefix: &prefix, Span: span.Span{Start: tok.Span.Start, End: nameSpan.End}}, nil

	default:
		return css_ast.WqName{}, csserror.New(csserror.ExpectWqName, tok.Span)
	}
}

// parseSassInterpolatedIdentStartingAt continues parsing a
// SassInterpolatedIdent given that its opening HashLBrace has already
// been bumped as tok.
func (p *Parser) parseSassInterpolatedIdentStartingAt(tok css_lexer.Token) (css_ast.InterpolableIdent, error) {
	depth := 1
	var lastEnd = tok.Span.End
	for depth > 0 {
		next, err := p.bump()
		if err != nil {
			return nil, err
		}
		switch next.Kind {
		case css_lexer.TLBrace, css_lexer.THashLBrace:
			depth++
		case css_lexer.TRBrace:
			depth--
		case css_lexer.TEOF:
			return nil, csserror.New(csserror.UnexpectedEof, next.Span)
		}
		lastEnd = next.Span.End
	}
	first := &css_ast.ExprIdentPart{
		Raw:  p.tokenizer.Source()[tok.Span.Start:lastEnd],
		Span: span.Span{Start: tok.Span.Start, End: lastEnd},
	}
	elements := []css_ast.SassInterpolatedIdentElement{first}
	end := lastEnd

	for {
		n, err := p.peek()
		if err != nil {
			return nil, err
		}
		if n.Kind == css_lexer.TIdent && n.Span.Start == end {
			p.bump()
			elements = append(elements, &css_ast.StaticIdentPart{Value: n.Value, Raw: n.Raw, Span: n.Span})
			end = n.Span.End
			continue
		}
		if n.Kind == css_lexer.THashLBrace && n.Span.Start == end {
			part, partSpan, err := p.parseSassExprIdentPart()
			if err != nil {
				return nil, err
			}
			elements = append(elements, part)
			end = partSpan.End
			continue
		}
		break
	}
	return &css_ast.SassInterpolatedIdent{Elements: elements, Span: span.Span{Start: tok.Span.Start, End: end}}, nil
}

// --- attribute selectors --------------------------------------------------

func (p *Parser) parseAttributeSelector() (*css_ast.AttributeSelector, error) {
	lBracket, err := p.expect(css_lexer.TLBracket, "'['")
	if err != nil {
		return nil, err
	}
	name, err := p.parseWqName()
	if err != nil {
		return nil, err
	}

	matcherTok, err := p.peek()
	if err != nil {
		return nil, err
	}
	var matcher *css_ast.AttributeSelectorMatcher
	switch matcherTok.Kind {
	case css_lexer.TRBracket:
		// no matcher
	case css_lexer.TEqual:
		p.bump()
		matcher = &css_ast.AttributeSelectorMatcher{Kind: css_ast.MatchEquals, Span: matcherTok.Span}
	case css_lexer.TTildeEqual:
		p.bump()
		matcher = &css_ast.AttributeSelectorMatcher{Kind: css_ast.MatchTilde, Span: matcherTok.Span}
	case css_lexer.TBarEqual:
		p.bump()
		matcher = &css_ast.AttributeSelectorMatcher{Kind: css_ast.MatchBar, Span: matcherTok.Span}
	case css_lexer.TCaretEqual:
		p.bump()
		matcher = &css_ast.AttributeSelectorMatcher{Kind: css_ast.MatchCaret, Span: matcherTok.Span}
	case css_lexer.TDollarEqual:
		p.bump()
		matcher = &css_ast.AttributeSelectorMatcher{Kind: css_ast.MatchDollar, Span: matcherTok.Span}
	case css_lexer.TAsteriskEqual:
		p.bump()
		matcher = &css_ast.AttributeSelectorMatcher{Kind: css_ast.MatchAsterisk, Span: matcherTok.Span}
	default:
		return nil, csserror.New(csserror.ExpectAttributeSelectorMatcher, matcherTok.Span)
	}

	var value css_ast.AttributeSelectorValue
	if matcher != nil {
		valTok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch valTok.Kind {
		case css_lexer.TIdent, css_lexer.THashLBrace:
			ident, err := p.parseInterpolableIdent()
			if err != nil {
				return nil, err
			}
			value = &css_ast.AttrValueIdent{Ident: ident}
		case css_lexer.TString:
			p.bump()
			value = &css_ast.AttrValueStr{Value: valTok.Value, Raw: valTok.Raw, Span: valTok.Span}
		default:
			return nil, csserror.New(csserror.ExpectAttributeSelectorValue, valTok.Span)
		}
	}

	var modifier *css_ast.AttributeSelectorModifier
	if value != nil {
		modTok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if modTok.Kind == css_lexer.TIdent || modTok.Kind == css_lexer.THashLBrace {
			ident, err := p.parseInterpolableIdent()
			if err != nil {
				return nil, err
			}
			modifier = &css_ast.AttributeSelectorModifier{Ident: ident, Span: css_ast.InterpolableIdentSpan(ident)}
		}
	}

	rBracket, err := p.expect(css_lexer.TRBracket, "']'")
	if err != nil {
		return nil, err
	}
	return &css_ast.AttributeSelector{
		Name: name, Matcher: matcher, Value: value, Modifier: modifier,
		Span: span.Span{Start: lBracket.Span.Start, End: rBracket.Span.End},
	}, nil
}

// --- pseudo-classes and pseudo-elements ------------------------------------

func literalName(ident css_ast.InterpolableIdent) (string, bool) {
	lit, ok := ident.(*css_ast.LiteralIdent)
	if !ok {
		return "", false
	}
	return lit.Ident.Name, true
}

var nthNames = []string{"nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type", "nth-col", "nth-last-col"}
var selectorListNames = []string{"not", "is", "where", "matches"}
var compoundSelectorListNames = []string{"-moz-any", "-webkit-any", "current", "past", "future"}
var compoundSelectorNames = []string{"host", "host-context"}

func eqFoldAny(name string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

func (p *Parser) parsePseudoClassSelector() (*css_ast.PseudoClassSelector, error) {
	colon, err := p.expect(css_lexer.TColon, "':'")
	if err != nil {
		return nil, err
	}
	name, err := p.parseInterpolableIdent()
	if err != nil {
		return nil, err
	}
	nameSpan := css_ast.InterpolableIdentSpan(name)
	if err := assertNoWsOrComment(colon.Span, nameSpan); err != nil {
		return nil, err
	}
	end := nameSpan.End

	lParen, err := p.peek()
	if err != nil {
		return nil, err
	}
	var arg css_ast.PseudoClassSelectorArg
	if lParen.Kind == css_lexer.TLParen && lParen.Span.Start == nameSpan.End {
		p.bump()
		literal, isLiteral := literalName(name)
		switch {
		case isLiteral && eqFoldAny(literal, nthNames):
			nth, err := p.parseNth()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgNth{Value: nth}
		case isLiteral && eqFoldAny(literal, selectorListNames):
			list, err := p.ParseSelectorList()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgSelectorList{Value: list}
		case isLiteral && strings.EqualFold(literal, "has"):
			list, err := p.ParseRelativeSelectorList()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgRelativeSelectorList{Value: list}
		case isLiteral && strings.EqualFold(literal, "dir"):
			ident, err := p.parseInterpolableIdent()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgIdent{Value: ident}
		case isLiteral && strings.EqualFold(literal, "lang"):
			list, err := p.parseLanguageRangeList()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgLanguageRangeList{Value: list}
		case isLiteral && eqFoldAny(literal, compoundSelectorListNames):
			list, err := p.ParseCompoundSelectorList()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgCompoundSelectorList{Value: list}
		case isLiteral && eqFoldAny(literal, compoundSelectorNames):
			compound, err := p.parseCompoundSelector()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgCompoundSelector{Value: compound}
		default:
			generic, err := p.parseGenericPseudoArg()
			if err != nil {
				return nil, err
			}
			arg = generic
		}

		rParen, err := p.expect(css_lexer.TRParen, "')'")
		if err != nil {
			return nil, err
		}
		end = rParen.Span.End
	}

	return &css_ast.PseudoClassSelector{Name: name, Arg: arg, Span: span.Span{Start: colon.Span.Start, End: end}}, nil
}

func (p *Parser) parsePseudoElementSelector() (*css_ast.PseudoElementSelector, error) {
	colonColon, err := p.expect(css_lexer.TColonColon, "'::'")
	if err != nil {
		return nil, err
	}
	name, err := p.parseInterpolableIdent()
	if err != nil {
		return nil, err
	}
	nameSpan := css_ast.InterpolableIdentSpan(name)
	if err := assertNoWsOrComment(colonColon.Span, nameSpan); err != nil {
		return nil, err
	}
	end := nameSpan.End

	lParen, err := p.peek()
	if err != nil {
		return nil, err
	}
	var arg css_ast.PseudoElementSelectorArg
	if lParen.Kind == css_lexer.TLParen && lParen.Span.Start == nameSpan.End {
		p.bump()
		literal, isLiteral := literalName(name)
		switch {
		case isLiteral && strings.EqualFold(literal, "part"):
			ident, err := p.parseInterpolableIdent()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgIdent{Value: ident}
		case isLiteral && (strings.EqualFold(literal, "cue") || strings.EqualFold(literal, "cue-region") || strings.EqualFold(literal, "slotted")):
			compound, err := p.parseCompoundSelector()
			if err != nil {
				return nil, err
			}
			arg = &css_ast.PseudoArgCompoundSelector{Value: compound}
		default:
			generic, err := p.parseGenericPseudoArg()
			if err != nil {
				return nil, err
			}
			arg = generic
		}

		rParen, err := p.expect(css_lexer.TRParen, "')'")
		if err != nil {
			return nil, err
		}
		end = rParen.Span.End
	}

	return &css_ast.PseudoElementSelector{Name: name, Arg: arg, Span: span.Span{Start: colonColon.Span.Start, End: end}}, nil
}

// parseGenericPseudoArg handles the open question left by the upstream
// grammar for pseudo names not in the dispatch table: rather than
// panicking, it consumes a paren-balanced run of tokens as an opaque
// argument, stopping just before the matching ')'.
func (p *Parser) parseGenericPseudoArg() (*css_ast.PseudoArgGeneric, error) {
	start := p.tokenizer.CurrentOffset()
	depth := 0
	end := start
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == css_lexer.TRParen && depth == 0 {
			break
		}
		if tok.Kind == css_lexer.TEOF {
			return nil, csserror.New(csserror.UnexpectedEof, tok.Span)
		}
		if tok.Kind == css_lexer.TLParen {
			depth++
		} else if tok.Kind == css_lexer.TRParen {
			depth--
		}
		p.bump()
		end = tok.Span.End
	}
	return &css_ast.PseudoArgGeneric{Raw: p.tokenizer.Source()[start:end], Span: span.Span{Start: start, End: end}}, nil
}

// --- :lang() language ranges ------------------------------------------------

func (p *Parser) parseLanguageRange() (css_ast.LanguageRange, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == css_lexer.TString {
		p.bump()
		return &css_ast.LanguageRangeStr{Value: tok.Value, Raw: tok.Raw, Span: tok.Span}, nil
	}
	ident, err := p.parseInterpolableIdent()
	if err != nil {
		return nil, err
	}
	return &css_ast.LanguageRangeIdent{Value: ident}, nil
}

func languageRangeSpan(l css_ast.LanguageRange) span.Span {
	switch v := l.(type) {
	case *css_ast.LanguageRangeIdent:
		return css_ast.InterpolableIdentSpan(v.Value)
	case *css_ast.LanguageRangeStr:
		return v.Span
	default:
		return span.Span{}
	}
}

func (p *Parser) parseLanguageRangeList() (css_ast.LanguageRangeList, error) {
	items, sp, err := parseCommaList(p, p.parseLanguageRange, languageRangeSpan)
	if err != nil {
		return css_ast.LanguageRangeList{}, err
	}
	return css_ast.LanguageRangeList{Ranges: items, Span: sp}, nil
}

// --- An+B and Nth ------------------------------------------------------------

func (p *Parser) parseNth() (css_ast.Nth, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == css_lexer.TIdent {
		if strings.EqualFold(tok.Value, "odd") {
			p.bump()
			return &css_ast.NthOdd{Span: tok.Span}, nil
		}
		if strings.EqualFold(tok.Value, "even") {
			p.bump()
			return &css_ast.NthEven{Span: tok.Span}, nil
		}
	}
	if tok.Kind == css_lexer.TNumber {
		p.bump()
		if tok.Num != float64(int64(tok.Num)) {
			return nil, csserror.New(csserror.ExpectInteger, tok.Span)
		}
		return &css_ast.NthInteger{Value: int32(tok.Num), Span: tok.Span}, nil
	}
	anb, err := p.parseAnPlusB()
	if err != nil {
		return nil, err
	}
	return &css_ast.NthAnPlusB{Value: anb}, nil
}

func isAllASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// expectUnsignedInt requires the next token to be a Number whose raw text
// is only ASCII digits (no sign, point, or exponent).
func (p *Parser) expectUnsignedInt() (css_lexer.Token, error) {
	tok, err := p.expect(css_lexer.TNumber, "an unsigned integer")
	if err != nil {
		return tok, err
	}
	if !isAllASCIIDigits(tok.Raw) {
		return tok, csserror.New(csserror.ExpectUnsignedInteger, tok.Span)
	}
	return tok, nil
}

func parseSignedIntToken(tok css_lexer.Token) (int32, error) {
	if tok.Num != float64(int64(tok.Num)) {
		return 0, csserror.New(csserror.ExpectInteger, tok.Span)
	}
	return int32(tok.Num), nil
}

// parseAnPlusB implements the seven lexical shapes of the An+B
// micro-syntax: a dimension whose unit is n/n-/n-<digits>, or an ident
// form (+n/n/-n, each with the same trailing shapes) built from a Plus
// token plus a bare ident, or a bare Ident token alone.
func (p *Parser) parseAnPlusB() (css_ast.AnPlusB, error) {
	tok, err := p.peek()
	if err != nil {
		return css_ast.AnPlusB{}, err
	}

	switch tok.Kind {
	case css_lexer.TDimension:
		p.bump()
		return p.anPlusBFromDimension(tok)
	case css_lexer.TPlus:
		p.bump()
		ident, err := p.expect(css_lexer.TIdent, "an identifier")
		if err != nil {
			return css_ast.AnPlusB{}, err
		}
		if err := assertNoWsOrComment(tok.Span, ident.Span); err != nil {
			return css_ast.AnPlusB{}, err
		}
		return p.anPlusBFromIdentForm(tok.Span.Start, ident, 1)
	case css_lexer.TIdent:
		p.bump()
		if strings.EqualFold(tok.Value, "-n") || strings.EqualFold(tok.Value, "-n-") || strings.HasPrefix(strings.ToLower(tok.Value), "-n-") {
			return p.anPlusBFromIdentForm(tok.Span.Start, tok, -1)
		}
		return p.anPlusBFromIdentForm(tok.Span.Start, tok, 1)
	default:
		return css_ast.AnPlusB{}, csserror.New(csserror.InvalidAnPlusB, tok.Span)
	}
}

func (p *Parser) anPlusBFromDimension(tok css_lexer.Token) (css_ast.AnPlusB, error) {
	a := int32(tok.Num)
	if float64(a) != tok.Num {
		return css_ast.AnPlusB{}, csserror.New(csserror.ExpectInteger, tok.Span)
	}
	name := tok.UnitValue

	switch {
	case strings.EqualFold(name, "n"):
		return p.anPlusBTrailing(tok.Span.Start, tok.Span.End, a)
	case strings.EqualFold(name, "n-"):
		number, err := p.expectUnsignedInt()
		if err != nil {
			return css_ast.AnPlusB{}, err
		}
		b, err := strconv.Atoi(number.Raw)
		if err != nil {
			return css_ast.AnPlusB{}, csserror.New(csserror.ExpectInteger, number.Span)
		}
		return css_ast.AnPlusB{A: a, B: int32(-b), Span: span.Span{Start: tok.Span.Start, End: number.Span.End}}, nil
	default:
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, "n-") {
			digits := name[2:]
			if !isAllASCIIDigits(digits) {
				return css_ast.AnPlusB{}, csserror.New(csserror.ExpectUnsignedInteger, span.Span{Start: tok.UnitSpan.Start + 2, End: tok.UnitSpan.End})
			}
			b, err := strconv.Atoi(digits)
			if err != nil {
				return css_ast.AnPlusB{}, csserror.New(csserror.ExpectInteger, span.Span{Start: tok.UnitSpan.Start + 2, End: tok.UnitSpan.End})
			}
			return css_ast.AnPlusB{A: a, B: int32(-b), Span: tok.Span}, nil
		}
		return css_ast.AnPlusB{}, csserror.New(csserror.InvalidAnPlusB, tok.Span)
	}
}

// anPlusBTrailing parses the optional trailing `['+'|'-'] <signless-int>`
// or signed `Number` that may follow an `n`-unit dimension or ident,
// defaulting to b=0 when nothing follows.
func (p *Parser) anPlusBTrailing(start, end int, a int32) (css_ast.AnPlusB, error) {
	tok, err := p.peek()
	if err != nil {
		return css_ast.AnPlusB{}, err
	}
	switch tok.Kind {
	case css_lexer.TPlus, css_lexer.TMinus:
		p.bump()
		number, err := p.expectUnsignedInt()
		if err != nil {
			return css_ast.AnPlusB{}, err
		}
		b, err := strconv.Atoi(number.Raw)
		if err != nil {
			return css_ast.AnPlusB{}, csserror.New(csserror.ExpectInteger, number.Span)
		}
		sign := int32(1)
		if tok.Kind == css_lexer.TMinus {
			sign = -1
		}
		return css_ast.AnPlusB{A: a, B: sign * int32(b), Span: span.Span{Start: start, End: number.Span.End}}, nil
	case css_lexer.TNumber:
		if !strings.HasPrefix(tok.Raw, "+") && !strings.HasPrefix(tok.Raw, "-") {
			return css_ast.AnPlusB{}, csserror.New(csserror.InvalidAnPlusB, tok.Span)
		}
		p.bump()
		b, err := parseSignedIntToken(tok)
		if err != nil {
			return css_ast.AnPlusB{}, err
		}
		return css_ast.AnPlusB{A: a, B: b, Span: span.Span{Start: start, End: tok.Span.End}}, nil
	default:
		return css_ast.AnPlusB{A: a, B: 0, Span: span.Span{Start: start, End: end}}, nil
	}
}

// anPlusBFromIdentForm handles the +n/n/-n ident shapes (tok is the
// whole ident token: "n", "n-", "n-<digits>", or the "-n"-prefixed
// variants), given the sign already implied by the leading token (a
// literal Plus before the ident, or a bare ident starting with "-n").
func (p *Parser) anPlusBFromIdentForm(start int, tok css_lexer.Token, a int32) (css_ast.AnPlusB, error) {
	name := tok.Value
	lower := strings.ToLower(name)

	stripPrefix := ""
	switch {
	case a == -1:
		stripPrefix = "-n"
	default:
		stripPrefix = "n"
	}

	switch {
	case strings.EqualFold(name, stripPrefix):
		return p.anPlusBTrailing(start, tok.Span.End, a)
	case strings.EqualFold(name, stripPrefix+"-"):
		number, err := p.expectUnsignedInt()
		if err != nil {
			return css_ast.AnPlusB{}, err
		}
		b, err := strconv.Atoi(number.Raw)
		if err != nil {
			return css_ast.AnPlusB{}, csserror.New(csserror.ExpectInteger, number.Span)
		}
		return css_ast.AnPlusB{A: a, B: int32(-b), Span: span.Span{Start: start, End: number.Span.End}}, nil
	case strings.HasPrefix(lower, stripPrefix+"-"):
		digits := name[len(stripPrefix)+1:]
		if !isAllASCIIDigits(digits) {
			return css_ast.AnPlusB{}, csserror.New(csserror.ExpectUnsignedInteger, span.Span{Start: tok.Span.Start + len(stripPrefix) + 1, End: tok.Span.End})
		}
		b, err := strconv.Atoi(digits)
		if err != nil {
			return css_ast.AnPlusB{}, csserror.New(csserror.ExpectInteger, span.Span{Start: tok.Span.Start + len(stripPrefix) + 1, End: tok.Span.End})
		}
		return css_ast.AnPlusB{A: a, B: int32(-b), Span: span.Span{Start: start, End: tok.Span.End}}, nil
	default:
		return css_ast.AnPlusB{}, csserror.New(csserror.InvalidAnPlusB, span.Span{Start: start, End: tok.Span.End})
	}
}

// --- @page selectors ---------------------------------------------------------

func (p *Parser) parsePseudoPage() (css_ast.PseudoPage, error) {
	colon, err := p.expect(css_lexer.TColon, "':'")
	if err != nil {
		return css_ast.PseudoPage{}, err
	}
	name, err := p.parseInterpolableIdent()
	if err != nil {
		return css_ast.PseudoPage{}, err
	}
	nameSpan := css_ast.InterpolableIdentSpan(name)
	if err := assertNoWsOrComment(colon.Span, nameSpan); err != nil {
		return css_ast.PseudoPage{}, err
	}
	return css_ast.PseudoPage{Name: name, Span: span.Span{Start: colon.Span.Start, End: nameSpan.End}}, nil
}

func (p *Parser) ParsePageSelector() (css_ast.PageSelector, error) {
	var name css_ast.InterpolableIdent
	var pseudo []css_ast.PseudoPage
	var start, end int

	tok, err := p.peek()
	if err != nil {
		return css_ast.PageSelector{}, err
	}
	if tok.Kind == css_lexer.TColon {
		first, err := p.parsePseudoPage()
		if err != nil {
			return css_ast.PageSelector{}, err
		}
		start, end = first.Span.Start, first.Span.End
		pseudo = append(pseudo, first)
	} else {
		ident, err := p.parseInterpolableIdent()
		if err != nil {
			return css_ast.PageSelector{}, err
		}
		identSpan := css_ast.InterpolableIdentSpan(ident)
		start, end = identSpan.Start, identSpan.End
		name = ident
	}

	for {
		next, err := p.peek()
		if err != nil {
			return css_ast.PageSelector{}, err
		}
		if next.Kind != css_lexer.TColon || next.Span.Start != end {
			break
		}
		item, err := p.parsePseudoPage()
		if err != nil {
			return css_ast.PageSelector{}, err
		}
		end = item.Span.End
		pseudo = append(pseudo, item)
	}

	return css_ast.PageSelector{Name: name, Pseudo: pseudo, Span: span.Span{Start: start, End: end}}, nil
}

func (p *Parser) ParsePageSelectorList() (css_ast.PageSelectorList, error) {
	items, sp, err := parseCommaList(p, p.ParsePageSelector, func(s css_ast.PageSelector) span.Span { return s.Span })
	if err != nil {
		return css_ast.PageSelectorList{}, err
	}
	return css_ast.PageSelectorList{Selectors: items, Span: sp}, nil
}
