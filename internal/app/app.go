package app

import (
    "context"
    "errors"
    "fmt"
    "io"
    "strings"

    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/htmlflow/internal/extract"
    "github.com/hyperifyio/htmlflow/internal/load"
)

// ErrNoInput is returned by Run when no input path is configured.
var ErrNoInput = errors.New("no input path")

// Run loads cfg.InputPath, strips scripts and styles, applies ex and writes
// the result followed by a newline to w. A document without a body is not an
// error for the flow extractor: the sentinel line is written instead.
func Run(ctx context.Context, cfg Config, ex extract.Extractor, w io.Writer) error {
    if strings.TrimSpace(cfg.InputPath) == "" {
        return ErrNoInput
    }
    enc, err := load.Lookup(cfg.Encoding)
    if err != nil {
        return err
    }
    if err := ctx.Err(); err != nil {
        return err
    }

    markup, err := load.ReadFile(cfg.InputPath, enc)
    if err != nil {
        return err
    }
    log.Debug().Str("path", cfg.InputPath).Str("encoding", encodingLabel(cfg.Encoding)).Int("bytes", len(markup)).Msg("input decoded")

    doc, err := extract.Parse(markup)
    if err != nil {
        return fmt.Errorf("parse html: %w", err)
    }
    removed := doc.Sanitize()
    log.Debug().Int("removed", removed).Bool("body", doc.HasBody()).Msg("document sanitized")

    if err := ctx.Err(); err != nil {
        return err
    }
    out, err := ex.Extract(doc)
    switch {
    case errors.Is(err, extract.ErrNoBody):
        log.Debug().Msg("document has no body")
        out = extract.NoBodySentinel
    case err != nil:
        return fmt.Errorf("extract: %w", err)
    }
    log.Debug().Int("lines", countLines(out)).Msg("extraction done")

    _, err = fmt.Fprintln(w, out)
    return err
}

func encodingLabel(name string) string {
    if s := strings.TrimSpace(name); s != "" {
        return strings.ToLower(s)
    }
    return load.DefaultEncoding
}

func countLines(s string) int {
    if s == "" {
        return 0
    }
    return strings.Count(s, "\n") + 1
}
