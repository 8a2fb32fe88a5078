package css_ast

import "github.com/cssfront/cssfront/internal/span"

// PseudoPage is a page pseudo-class, e.g. `:first` in `@page :first`.
type PseudoPage struct {
	Name InterpolableIdent
	Span span.Span
}

// PageSelector is one element of a @page at-rule's prelude: an optional
// page type name followed by zero or more adjacent pseudo-pages. The
// @page rule body itself is out of scope; only this selector grammar is
// implemented.
//
// https://www.w3.org/TR/css-page-3/#syntax-page-selector
type PageSelector struct {
	Name   InterpolableIdent // nil when the selector starts with a pseudo-page
	Pseudo []PseudoPage
	Span   span.Span
}

// PageSelectorList is a comma-separated, non-empty list of PageSelectors.
type PageSelectorList struct {
	Selectors []PageSelector
	Span      span.Span
}
