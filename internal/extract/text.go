package extract

import (
    "strings"

    "golang.org/x/net/html"
)

// Text renders every text node of doc in document order, one fragment per
// line. Lines are trimmed and further split on runs of two spaces; empty
// fragments are dropped. A document without text yields "".
func Text(doc *Document) string {
    var parts []string
    walk(doc.root(), func(n *html.Node) {
        if n.Type == html.TextNode {
            parts = append(parts, n.Data)
        }
    })
    return normalizeLines(strings.Join(parts, "\n"))
}

func normalizeLines(s string) string {
    out := make([]string, 0)
    for _, line := range strings.FieldsFunc(s, isLineBreak) {
        line = strings.TrimSpace(line)
        for _, frag := range strings.Split(line, "  ") {
            if frag = strings.TrimSpace(frag); frag != "" {
                out = append(out, frag)
            }
        }
    }
    return strings.Join(out, "\n")
}

func isLineBreak(r rune) bool {
    switch r {
    case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
        return true
    }
    return false
}
