// Package selector implements CSS selector parsing and matching.
package selector

import (
	"github.com/nolanw/htmlreader-go/dom"
)

// Selector represents a parsed CSS selector.
type Selector interface {
	// Match returns true if the element matches this selector.
	Match(element *dom.Element) bool

	// String returns the original selector string.
	String() string
}

// astSelector adapts the internal selectorAST produced by the tokenizer and
// parser to the public Selector interface.
type astSelector struct {
	ast selectorAST
	raw string
}

func (s *astSelector) Match(element *dom.Element) bool {
	return matchAST(element, s.ast)
}

func (s *astSelector) String() string {
	return s.raw
}

// Parse parses a CSS selector string into a matchable Selector.
//
// Accepts type, universal, ID, class, attribute and pseudo-class selectors,
// the four combinators and comma-separated lists; pseudo-elements and
// namespace prefixes are rejected, and :not() accepts any selector. The
// pseudo-classes that match are :first-child, :last-child, :only-child,
// :nth-child(), :nth-last-child(), :first-of-type, :last-of-type,
// :only-of-type, :nth-of-type(), :nth-last-of-type(), :empty, :root and
// :not(). Any other pseudo-class name (including :enabled, :disabled and
// :checked) parses but matches no element.
func Parse(selector string) (Selector, error) {
	ast, err := parseSelectorString(selector)
	if err != nil {
		return nil, err
	}
	return &astSelector{ast: ast, raw: selector}, nil
}

// parseSelectorString runs the tokenizer then the parser over a selector
// string and returns its AST, without wrapping it for the public API.
func parseSelectorString(selector string) (selectorAST, error) {
	tokens, err := newTokenizer(selector).tokenize()
	if err != nil {
		return nil, err
	}
	return newParser(tokens, selector).parse()
}

// Compiled is a precompiled selector that can be matched against many trees,
// or matched repeatedly against one tree, without re-parsing the selector
// string each time.
type Compiled struct {
	sel Selector
}

// Compile parses selector once and returns a reusable Compiled matcher.
func Compile(selector string) (*Compiled, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}
	return &Compiled{sel: sel}, nil
}

// Matches reports whether element itself matches the compiled selector.
func (c *Compiled) Matches(element *dom.Element) bool {
	return c.sel.Match(element)
}

// FirstMatch returns the first element in root's subtree (root included)
// matching the compiled selector, or nil.
func (c *Compiled) FirstMatch(root *dom.Element) *dom.Element {
	return findFirst(root, c.sel)
}

// AllMatches returns every element in root's subtree (root included)
// matching the compiled selector, in document order.
func (c *Compiled) AllMatches(root *dom.Element) []*dom.Element {
	var results []*dom.Element
	matchDescendants(root, c.sel, &results)
	return results
}

// String returns the original selector string the Compiled was built from.
func (c *Compiled) String() string {
	return c.sel.String()
}

// Match returns all elements in the subtree that match the selector.
func Match(root *dom.Element, selector string) ([]*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	var results []*dom.Element
	matchDescendants(root, sel, &results)
	return results, nil
}

// MatchFirst returns the first element that matches the selector.
func MatchFirst(root *dom.Element, selector string) (*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	return findFirst(root, sel), nil
}

// init registers this package's Match/MatchFirst with the dom package so
// Element.Query/QueryFirst can issue selector queries without dom importing
// selector directly (which would be a circular import).
func init() {
	dom.SetSelectorMatch(Match)
	dom.SetSelectorMatchFirst(MatchFirst)
}

func matchDescendants(elem *dom.Element, sel Selector, results *[]*dom.Element) {
	if sel.Match(elem) {
		*results = append(*results, elem)
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			matchDescendants(childElem, sel, results)
		}
	}
}

func findFirst(elem *dom.Element, sel Selector) *dom.Element {
	if sel.Match(elem) {
		return elem
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := findFirst(childElem, sel); found != nil {
				return found
			}
		}
	}
	return nil
}
