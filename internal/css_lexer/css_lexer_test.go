package css_lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cssfront/cssfront/internal/cssconfig"
	"github.com/cssfront/cssfront/internal/span"
)

func bumpAll(t *testing.T, source string, cfg cssconfig.Config) ([]Token, []Comment) {
	t.Helper()
	var comments []Comment
	tok := NewTokenizer(source, cfg, &comments)
	var tokens []Token
	for {
		tt, err := tok.Bump()
		require.NoError(t, err)
		tokens = append(tokens, tt)
		if tt.Kind == TEOF {
			return tokens, comments
		}
	}
}

func kinds(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func TestSimpleSelectorTokens(t *testing.T) {
	tokens, _ := bumpAll(t, "a.b#c", cssconfig.Config{Syntax: cssconfig.Css})
	require.Equal(t, []Kind{TIdent, TDot, TIdent, THash, TEOF}, kinds(tokens))
	require.Equal(t, "a", tokens[0].Value)
	require.Equal(t, "b", tokens[2].Value)
	require.Equal(t, "c", tokens[3].Value)
	require.Equal(t, span.Span{Start: 0, End: 1}, tokens[0].Span)
	require.Equal(t, span.Span{Start: 5, End: 5}, tokens[4].Span)
}

func TestDescendantVsAdjacentCombinatorGap(t *testing.T) {
	tokens, _ := bumpAll(t, "a .b", cssconfig.Config{Syntax: cssconfig.Css})
	require.Equal(t, []Kind{TIdent, TDot, TIdent, TEOF}, kinds(tokens))
	// Space is skipped by the tokenizer; the gap itself is detected by the
	// parser comparing current_offset() against the next token's span.
	require.Equal(t, 1, tokens[0].Span.End)
	require.Equal(t, 2, tokens[1].Span.Start)
}

func TestScssStringInterpolation(t *testing.T) {
	tokens, _ := bumpAll(t, `"a#{b}c"`, cssconfig.Config{Syntax: cssconfig.Scss})
	require.Equal(t, []Kind{TStrTemplate, THashLBrace, TIdent, TRBrace, TStrTemplate, TEOF}, kinds(tokens))
	require.False(t, tokens[0].Tail)
	require.Equal(t, `"a`, tokens[0].Raw)
	require.Equal(t, "b", tokens[2].Value)
	require.True(t, tokens[4].Tail)
	require.Equal(t, `c"`, tokens[4].Raw)
}

func TestCssHasNoInterpolation(t *testing.T) {
	tokens, _ := bumpAll(t, `"a#{b}c"`, cssconfig.Config{Syntax: cssconfig.Css})
	require.Equal(t, []Kind{TString, TEOF}, kinds(tokens))
}

func TestUrlRawVsTemplate(t *testing.T) {
	tokens, _ := bumpAll(t, `url(./x.png)`, cssconfig.Config{Syntax: cssconfig.Css})
	require.Equal(t, []Kind{TUrlPrefix, TUrlRaw, TEOF}, kinds(tokens))

	tokens2, _ := bumpAll(t, `url( http://x/#{y}.png )`, cssconfig.Config{Syntax: cssconfig.Scss})
	require.Equal(t, []Kind{TUrlPrefix, TUrlTemplate, THashLBrace, TIdent, TRBrace, TUrlTemplate, TEOF}, kinds(tokens2))
	require.False(t, tokens2[1].Tail)
	require.True(t, tokens2[5].Tail)
}

func TestSassIndentDedentLinebreak(t *testing.T) {
	source := "a\n  b\n  c\nd\n"
	tokens, _ := bumpAll(t, source, cssconfig.Config{Syntax: cssconfig.Sass})
	require.Equal(t, []Kind{
		TIdent, TIndent, TIdent, TLinebreak, TIdent, TDedent, TIdent, TEOF,
	}, kinds(tokens))
}

// The tokenizer accepts a hash whose name starts with a digit; rejecting
// it as an id selector name is the parser's job.
func TestHashTokenAcceptsNameStartingWithDigit(t *testing.T) {
	var comments []Comment
	tok := NewTokenizer("#1abc", cssconfig.Config{Syntax: cssconfig.Css}, &comments)
	tt, err := tok.Bump()
	require.NoError(t, err)
	require.Equal(t, THash, tt.Kind)
	require.Equal(t, "1abc", tt.Value)
}

func TestEscapeDecoding(t *testing.T) {
	tokens, _ := bumpAll(t, `\41 bc`, cssconfig.Config{Syntax: cssconfig.Css})
	require.Equal(t, TIdent, tokens[0].Kind)
	require.Equal(t, "Abc", tokens[0].Value)
}

func TestPeekIsIdempotentAndStable(t *testing.T) {
	var comments []Comment
	tok := NewTokenizer("a.b", cssconfig.Config{Syntax: cssconfig.Css}, &comments)
	first, err := tok.Peek()
	require.NoError(t, err)
	second, err := tok.Peek()
	require.NoError(t, err)
	require.Equal(t, first, second)
	bumped, err := tok.Bump()
	require.NoError(t, err)
	require.Equal(t, first, bumped)
}

func TestLineCommentsOnlyOutsideCss(t *testing.T) {
	var comments []Comment
	tok := NewTokenizer("a // hi\nb", cssconfig.Config{Syntax: cssconfig.Scss}, &comments)
	_, err := tok.Bump()
	require.NoError(t, err)
	_, err = tok.Bump()
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.False(t, comments[0].Block)
	require.Equal(t, " hi", comments[0].Content)
}
