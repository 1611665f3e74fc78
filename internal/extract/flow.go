package extract

import (
    "errors"
    "strings"
    "unicode/utf8"

    "golang.org/x/net/html"
    "golang.org/x/net/html/atom"
)

// ErrNoBody is returned by FlowRecords when the source has no <body>.
var ErrNoBody = errors.New("no body found")

// NoBodySentinel is printed in place of a flow when the document has no body.
const NoBodySentinel = "No body found"

// minStringRunes is the length a bare text node must exceed to be reported.
const minStringRunes = 2

// Kind tags a feedback flow record.
type Kind int

const (
    KindImage Kind = iota
    KindText
    KindString
)

// Tag returns the literal line prefix for k.
func (k Kind) Tag() string {
    switch k {
    case KindImage:
        return "IMAGE"
    case KindText:
        return "TEXT"
    case KindString:
        return "STRING"
    }
    return "UNKNOWN"
}

// Record is one line of a feedback flow.
type Record struct {
    Kind  Kind
    Value string
}

func (r Record) String() string {
    return r.Kind.Tag() + ": " + r.Value
}

// FlowRecords walks the body of doc in document order and reports images,
// captioned containers and loose text. The same text may be reported twice:
// once as TEXT for its p/div/span and again as STRING for the text node
// itself.
func FlowRecords(doc *Document) ([]Record, error) {
    if !doc.HasBody() {
        return nil, ErrNoBody
    }
    body := doc.body()
    if body == nil {
        return nil, ErrNoBody
    }

    var records []Record
    walk(body, func(n *html.Node) {
        switch {
        case n.Type == html.ElementNode && n.DataAtom == atom.Img:
            if src := attr(n, "src"); src != "" {
                records = append(records, Record{Kind: KindImage, Value: src})
            }
        case isContainer(n):
            if s, ok := singleString(n); !ok || s == "" {
                return
            }
            if text := strings.TrimSpace(textContent(n)); text != "" {
                records = append(records, Record{Kind: KindText, Value: text})
            }
        case n.Type == html.TextNode:
            text := strings.TrimSpace(n.Data)
            if utf8.RuneCountInString(text) > minStringRunes {
                records = append(records, Record{Kind: KindString, Value: text})
            }
        }
    })
    return records, nil
}

// Flow renders FlowRecords as newline-joined tagged lines.
func Flow(doc *Document) (string, error) {
    records, err := FlowRecords(doc)
    if err != nil {
        return "", err
    }
    lines := make([]string, len(records))
    for i, r := range records {
        lines[i] = r.String()
    }
    return strings.Join(lines, "\n"), nil
}

func isContainer(n *html.Node) bool {
    if n.Type != html.ElementNode {
        return false
    }
    switch n.DataAtom {
    case atom.P, atom.Div, atom.Span:
        return true
    }
    return false
}

// singleString follows lone-child chains down to a text node. It fails when
// any element on the way has zero or several children.
func singleString(n *html.Node) (string, bool) {
    c := n.FirstChild
    if c == nil || c.NextSibling != nil {
        return "", false
    }
    switch c.Type {
    case html.TextNode:
        return c.Data, true
    case html.ElementNode:
        return singleString(c)
    }
    return "", false
}

// attr returns the value of key on n. Repeated attributes resolve to the last one.
func attr(n *html.Node, key string) string {
    val := ""
    for _, a := range n.Attr {
        if a.Namespace == "" && a.Key == key {
            val = a.Val
        }
    }
    return val
}
