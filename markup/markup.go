// Package markup exposes the narrow tree API the scraper needs from an HTML parser.
package markup

// Node is an element (or document) in a parsed page.
type Node interface {
	// Select returns the descendants matching a CSS selector, in document order.
	Select(selector string) []Node

	// Text returns the combined text content of the node and its descendants.
	Text() string

	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)
}

// Parser turns raw markup into a navigable tree.
type Parser interface {
	Parse(raw []byte) (Node, error)
}
