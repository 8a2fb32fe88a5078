package css_parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cssfront/cssfront/internal/css_ast"
	"github.com/cssfront/cssfront/internal/cssconfig"
	"github.com/cssfront/cssfront/internal/span"
)

func mustParseSelectorList(t *testing.T, source string, syntax cssconfig.Syntax) css_ast.SelectorList {
	t.Helper()
	p := NewParser(source, cssconfig.Config{Syntax: syntax}, nil)
	list, err := p.ParseSelectorList()
	require.NoError(t, err)
	return list
}

func literalName(t *testing.T, ident css_ast.InterpolableIdent) string {
	t.Helper()
	lit, ok := ident.(*css_ast.LiteralIdent)
	require.True(t, ok)
	return lit.Ident.Name
}

func TestParseCompoundSelectorWithClassAndId(t *testing.T) {
	list := mustParseSelectorList(t, "a.b#c", cssconfig.Css)
	require.Len(t, list.Selectors, 1)
	complex := list.Selectors[0]
	require.Len(t, complex.Children, 1)
	compound := complex.Children[0].(*css_ast.CompoundSelector)
	require.Len(t, compound.Children, 3)

	tag := compound.Children[0].(*css_ast.TagNameSelector)
	require.Equal(t, "a", literalName(t, tag.Name.Name))

	class := compound.Children[1].(*css_ast.ClassSelector)
	require.Equal(t, "b", literalName(t, class.Name))

	id := compound.Children[2].(*css_ast.IdSelector)
	require.Equal(t, "c", literalName(t, id.Name))
}

func TestParseDescendantAndChildCombinators(t *testing.T) {
	list := mustParseSelectorList(t, "a .b > c", cssconfig.Css)
	complex := list.Selectors[0]
	require.Len(t, complex.Children, 5)

	descendant := complex.Children[1].(*css_ast.Combinator)
	require.Equal(t, css_ast.Descendant, descendant.Kind)

	child := complex.Children[3].(*css_ast.Combinator)
	require.Equal(t, css_ast.Child, child.Kind)
}

func TestParseSelectorListMultipleEntries(t *testing.T) {
	list := mustParseSelectorList(t, "a, b", cssconfig.Css)
	require.Len(t, list.Selectors, 2)
}

func TestParseAttributeSelectorWithMatcherAndModifier(t *testing.T) {
	list := mustParseSelectorList(t, `[data-x~="y" i]`, cssconfig.Css)
	compound := list.Selectors[0].Children[0].(*css_ast.CompoundSelector)
	attr := compound.Children[0].(*css_ast.AttributeSelector)
	require.Equal(t, "data-x", literalName(t, attr.Name.Name))
	require.NotNil(t, attr.Matcher)
	require.Equal(t, css_ast.MatchTilde, attr.Matcher.Kind)
	val := attr.Value.(*css_ast.AttrValueStr)
	require.Equal(t, "y", val.Value)
	require.NotNil(t, attr.Modifier)
	require.Equal(t, "i", literalName(t, attr.Modifier.Ident))
}

func TestParseNthChildAnPlusB(t *testing.T) {
	list := mustParseSelectorList(t, ":nth-child(2n+1)", cssconfig.Css)
	compound := list.Selectors[0].Children[0].(*css_ast.CompoundSelector)
	pc := compound.Children[0].(*css_ast.PseudoClassSelector)
	require.Equal(t, "nth-child", literalName(t, pc.Name))
	arg := pc.Arg.(*css_ast.PseudoArgNth)
	anb := arg.Value.(*css_ast.NthAnPlusB)
	require.Equal(t, int32(2), anb.Value.A)
	require.Equal(t, int32(1), anb.Value.B)
}

func TestParseNthChildOddEvenAndInteger(t *testing.T) {
	odd := mustParseSelectorList(t, ":nth-child(odd)", cssconfig.Css)
	pc := odd.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.PseudoClassSelector)
	_, isOdd := pc.Arg.(*css_ast.PseudoArgNth).Value.(*css_ast.NthOdd)
	require.True(t, isOdd)

	bare := mustParseSelectorList(t, ":nth-child(3)", cssconfig.Css)
	pc2 := bare.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.PseudoClassSelector)
	n := pc2.Arg.(*css_ast.PseudoArgNth).Value.(*css_ast.NthInteger)
	require.Equal(t, int32(3), n.Value)
}

func TestParseAnPlusBIdentForms(t *testing.T) {
	cases := map[string]css_ast.AnPlusB{
		"n":     {A: 1, B: 0},
		"n-1":   {A: 1, B: -1},
		"-n":    {A: -1, B: 0},
		"-n+3":  {A: -1, B: 3},
		"-n-2":  {A: -1, B: -2},
	}
	for src, want := range cases {
		list := mustParseSelectorList(t, ":nth-child("+src+")", cssconfig.Css)
		pc := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.PseudoClassSelector)
		anb := pc.Arg.(*css_ast.PseudoArgNth).Value.(*css_ast.NthAnPlusB).Value
		require.Equalf(t, want.A, anb.A, "A for %q", src)
		require.Equalf(t, want.B, anb.B, "B for %q", src)
	}
}

func TestParseNotWithSelectorList(t *testing.T) {
	list := mustParseSelectorList(t, ":not(.a, .b)", cssconfig.Css)
	pc := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.PseudoClassSelector)
	arg := pc.Arg.(*css_ast.PseudoArgSelectorList)
	require.Len(t, arg.Value.Selectors, 2)
}

func TestParseLangWithMultipleRanges(t *testing.T) {
	list := mustParseSelectorList(t, `:lang(en, "fr-CA")`, cssconfig.Css)
	pc := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.PseudoClassSelector)
	arg := pc.Arg.(*css_ast.PseudoArgLanguageRangeList)
	require.Len(t, arg.Value.Ranges, 2)
	ident := arg.Value.Ranges[0].(*css_ast.LanguageRangeIdent)
	require.Equal(t, "en", literalName(t, ident.Value))
	str := arg.Value.Ranges[1].(*css_ast.LanguageRangeStr)
	require.Equal(t, "fr-CA", str.Value)
}

func TestParseGenericPseudoArgForUnknownName(t *testing.T) {
	list := mustParseSelectorList(t, ":unknown-thing(1 + 2)", cssconfig.Css)
	pc := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.PseudoClassSelector)
	_, ok := pc.Arg.(*css_ast.PseudoArgGeneric)
	require.True(t, ok)
}

func TestParsePseudoElementWithCompoundSelectorArg(t *testing.T) {
	list := mustParseSelectorList(t, "::slotted(span.x)", cssconfig.Css)
	compound := list.Selectors[0].Children[0].(*css_ast.CompoundSelector)
	pe := compound.Children[0].(*css_ast.PseudoElementSelector)
	require.Equal(t, "slotted", literalName(t, pe.Name))
	arg := pe.Arg.(*css_ast.PseudoArgCompoundSelector)
	require.Len(t, arg.Value.Children, 2)
}

func TestParseHasWithRelativeSelectorList(t *testing.T) {
	list := mustParseSelectorList(t, ":has(> a, ~ b)", cssconfig.Css)
	pc := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.PseudoClassSelector)
	arg := pc.Arg.(*css_ast.PseudoArgRelativeSelectorList)
	require.Len(t, arg.Value.Selectors, 2)
	require.Equal(t, css_ast.Child, arg.Value.Selectors[0].Combinator.Kind)
	require.Equal(t, css_ast.LaterSibling, arg.Value.Selectors[1].Combinator.Kind)
}

func TestParseSassInterpolatedClassSelector(t *testing.T) {
	list := mustParseSelectorList(t, ".icon-#{$name}", cssconfig.Scss)
	class := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.ClassSelector)
	interp, ok := class.Name.(*css_ast.SassInterpolatedIdent)
	require.True(t, ok)
	require.Len(t, interp.Elements, 2)
	static := interp.Elements[0].(*css_ast.StaticIdentPart)
	require.Equal(t, "icon-", static.Value)
	_, isExpr := interp.Elements[1].(*css_ast.ExprIdentPart)
	require.True(t, isExpr)
}

func TestParseLessInterpolatedClassSelector(t *testing.T) {
	list := mustParseSelectorList(t, ".icon-@{name}", cssconfig.Less)
	class := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.ClassSelector)
	interp, ok := class.Name.(*css_ast.LessInterpolatedIdent)
	require.True(t, ok)
	require.Len(t, interp.Elements, 2)
	static := interp.Elements[0].(*css_ast.StaticIdentPart)
	require.Equal(t, "icon-", static.Value)
	variable := interp.Elements[1].(*css_ast.LessVariableIdentPart)
	require.Equal(t, "name", variable.Name)
}

func TestParseSassPlaceholderAndNestingSelectors(t *testing.T) {
	list := mustParseSelectorList(t, "%base, &.active", cssconfig.Scss)
	require.Len(t, list.Selectors, 2)

	placeholder := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.SassPlaceholderSelector)
	require.Equal(t, "base", literalName(t, placeholder.Name))

	compound := list.Selectors[1].Children[0].(*css_ast.CompoundSelector)
	require.Len(t, compound.Children, 2)
	_, isNesting := compound.Children[0].(*css_ast.NestingSelector)
	require.True(t, isNesting)
}

func TestParseTypeSelectorWithNamespacePrefix(t *testing.T) {
	list := mustParseSelectorList(t, "svg|rect", cssconfig.Css)
	tag := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.TagNameSelector)
	require.Equal(t, "rect", literalName(t, tag.Name.Name))
	require.NotNil(t, tag.Name.Prefix)
	require.Equal(t, css_ast.NsPrefixIdent, tag.Name.Prefix.Kind)
}

func TestParseUniversalSelectorWithWildcardNamespace(t *testing.T) {
	list := mustParseSelectorList(t, "*|*", cssconfig.Css)
	universal := list.Selectors[0].Children[0].(*css_ast.CompoundSelector).Children[0].(*css_ast.UniversalSelector)
	require.NotNil(t, universal.Prefix)
	require.Equal(t, css_ast.NsPrefixUniversal, universal.Prefix.Kind)
}

func TestParsePageSelectorListWithPseudoPages(t *testing.T) {
	p := NewParser(":first, narrow:left", cssconfig.Config{Syntax: cssconfig.Css}, nil)
	list, err := p.ParsePageSelectorList()
	require.NoError(t, err)
	require.Len(t, list.Selectors, 2)

	require.Nil(t, list.Selectors[0].Name)
	require.Len(t, list.Selectors[0].Pseudo, 1)
	require.Equal(t, "first", literalName(t, list.Selectors[0].Pseudo[0].Name))

	require.Equal(t, "narrow", literalName(t, list.Selectors[1].Name))
	require.Len(t, list.Selectors[1].Pseudo, 1)
	require.Equal(t, "left", literalName(t, list.Selectors[1].Pseudo[0].Name))
}

// TestParseComplexSelectorListStructuralDiff diffs a whole parsed AST
// against a hand-built expected tree with go-cmp, rather than asserting
// field by field, the way ericchiang-css's own parse_test.go diffs parsed
// selector ASTs.
func TestParseComplexSelectorListStructuralDiff(t *testing.T) {
	got := mustParseSelectorList(t, "a.b > c, d~e", cssconfig.Css)

	ident := func(name string, start, end int) css_ast.InterpolableIdent {
		return &css_ast.LiteralIdent{Ident: css_ast.Ident{Name: name, Raw: name, Span: span.Span{Start: start, End: end}}}
	}
	tag := func(name string, start, end int) css_ast.SimpleSelector {
		sp := span.Span{Start: start, End: end}
		return &css_ast.TagNameSelector{Name: css_ast.WqName{Name: ident(name, start, end), Span: sp}, Span: sp}
	}

	want := css_ast.SelectorList{
		Span: span.Span{Start: 0, End: 12},
		Selectors: []css_ast.ComplexSelector{
			{
				Span: span.Span{Start: 0, End: 7},
				Children: []css_ast.ComplexSelectorChild{
					&css_ast.CompoundSelector{
						Span: span.Span{Start: 0, End: 3},
						Children: []css_ast.SimpleSelector{
							tag("a", 0, 1),
							&css_ast.ClassSelector{Name: ident("b", 2, 3), Span: span.Span{Start: 1, End: 3}},
						},
					},
					&css_ast.Combinator{Kind: css_ast.Child, Span: span.Span{Start: 4, End: 5}},
					&css_ast.CompoundSelector{Span: span.Span{Start: 6, End: 7}, Children: []css_ast.SimpleSelector{tag("c", 6, 7)}},
				},
			},
			{
				Span: span.Span{Start: 9, End: 12},
				Children: []css_ast.ComplexSelectorChild{
					&css_ast.CompoundSelector{Span: span.Span{Start: 9, End: 10}, Children: []css_ast.SimpleSelector{tag("d", 9, 10)}},
					&css_ast.Combinator{Kind: css_ast.LaterSibling, Span: span.Span{Start: 10, End: 11}},
					&css_ast.CompoundSelector{Span: span.Span{Start: 11, End: 12}, Children: []css_ast.SimpleSelector{tag("e", 11, 12)}},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed selector list mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSelectorRejectsWhitespaceBetweenDotAndClassName(t *testing.T) {
	p := NewParser(". b", cssconfig.Config{Syntax: cssconfig.Css}, nil)
	_, err := p.ParseSelectorList()
	require.Error(t, err)
}
