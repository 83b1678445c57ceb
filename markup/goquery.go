package markup

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// Goquery is a Parser backed by goquery and cascadia selectors.
type Goquery struct{}

// Parse parses an HTML document. Malformed HTML is repaired by the parser, not rejected.
func (Goquery) Parse(raw []byte) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return selection{doc.Selection}, nil
}

type selection struct {
	s *goquery.Selection
}

func (n selection) Select(selector string) []Node {
	found := n.s.Find(selector)
	return lo.Map(lo.Range(found.Length()), func(i int, _ int) Node {
		return selection{found.Eq(i)}
	})
}

func (n selection) Text() string {
	return n.s.Text()
}

func (n selection) Attr(name string) (string, bool) {
	return n.s.Attr(name)
}
