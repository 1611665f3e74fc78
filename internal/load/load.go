package load

import (
    "errors"
    "fmt"
    "io"
    "os"
    "strings"
    "unicode/utf8"

    "golang.org/x/text/encoding"
    "golang.org/x/text/encoding/htmlindex"
    "golang.org/x/text/encoding/simplifiedchinese"
    "golang.org/x/text/transform"
)

// DefaultEncoding is the label used when none is configured.
const DefaultEncoding = "gb18030"

// ErrUnknownEncoding is returned by Lookup for labels the WHATWG index does not know.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Lookup resolves an encoding label such as "gb18030", "gbk" or "utf-8".
// An empty label selects GB18030.
func Lookup(name string) (encoding.Encoding, error) {
    name = strings.TrimSpace(name)
    if name == "" {
        return simplifiedchinese.GB18030, nil
    }
    enc, err := htmlindex.Get(name)
    if err != nil || enc == nil {
        return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
    }
    return enc, nil
}

// ReadFile reads the whole file at path and decodes it with enc, dropping any
// bytes the decoder cannot map. Open and read failures are returned as-is
// (wrapped) so callers can treat them as fatal.
func ReadFile(path string, enc encoding.Encoding) (string, error) {
    f, err := os.Open(path)
    if err != nil {
        return "", fmt.Errorf("open input: %w", err)
    }
    defer f.Close()

    raw, err := io.ReadAll(f)
    if err != nil {
        return "", fmt.Errorf("read input: %w", err)
    }
    return Decode(raw, enc), nil
}

// Decode converts raw to UTF-8. Undecodable sequences surface from the
// x/text decoders as U+FFFD; those runes are removed rather than reported.
func Decode(raw []byte, enc encoding.Encoding) string {
    if enc == nil {
        enc = simplifiedchinese.GB18030
    }
    // On error transform.Bytes still returns everything decoded so far.
    out, _, _ := transform.Bytes(enc.NewDecoder(), raw)
    return strings.ReplaceAll(string(out), string(utf8.RuneError), "")
}
