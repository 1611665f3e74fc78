package extract

import (
    "strings"

    "github.com/PuerkitoBio/goquery"
    "golang.org/x/net/html"
)

// Document is a parsed HTML tree ready for sanitizing and extraction.
type Document struct {
    dom *goquery.Document
    // hasBody records whether the source markup itself contained a <body>
    // start tag. The HTML5 parser always synthesizes one, so the tree alone
    // cannot answer this.
    hasBody bool
}

// Parse builds a Document from decoded markup. Scripting is disabled so that
// <noscript> content is parsed as markup instead of a single raw text node.
func Parse(markup string) (*Document, error) {
    root, err := html.ParseWithOptions(strings.NewReader(markup), html.ParseOptionEnableScripting(false))
    if err != nil {
        return nil, err
    }
    return &Document{
        dom:     goquery.NewDocumentFromNode(root),
        hasBody: hasBodyTag(markup),
    }, nil
}

// HasBody reports whether the source declared a <body> element.
func (d *Document) HasBody() bool {
    return d != nil && d.hasBody
}

// Sanitize removes every script and style element, with its subtree, in
// place. It returns the number of elements removed.
func (d *Document) Sanitize() int {
    if d == nil || d.dom == nil {
        return 0
    }
    sel := d.dom.Find("script, style")
    n := sel.Length()
    sel.Remove()
    return n
}

// body returns the first body element of the tree, or nil.
func (d *Document) body() *html.Node {
    if d == nil || d.dom == nil {
        return nil
    }
    sel := d.dom.Find("body").First()
    if sel.Length() == 0 {
        return nil
    }
    return sel.Get(0)
}

func (d *Document) root() *html.Node {
    if d == nil || d.dom == nil || len(d.dom.Nodes) == 0 {
        return nil
    }
    return d.dom.Nodes[0]
}

func hasBodyTag(markup string) bool {
    z := html.NewTokenizer(strings.NewReader(markup))
    for {
        switch z.Next() {
        case html.ErrorToken:
            return false
        case html.StartTagToken, html.SelfClosingTagToken:
            name, _ := z.TagName()
            if string(name) == "body" {
                return true
            }
        }
    }
}

// walk visits n's descendants depth-first in document order, not n itself.
func walk(n *html.Node, fn func(*html.Node)) {
    if n == nil {
        return
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        fn(c)
        walk(c, fn)
    }
}

// textContent concatenates all text node data beneath n.
func textContent(n *html.Node) string {
    var b strings.Builder
    walk(n, func(c *html.Node) {
        if c.Type == html.TextNode {
            b.WriteString(c.Data)
        }
    })
    return b.String()
}
