// Command extract_html_text prints all visible text of a saved HTML page, one fragment per line.
package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/htmlflow/internal/app"
	"github.com/hyperifyio/htmlflow/internal/extract"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	return app.Execute("extract_html_text", extract.TextExtractor{}, args, stdout)
}
