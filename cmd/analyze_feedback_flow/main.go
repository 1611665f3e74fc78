// Command analyze_feedback_flow prints the IMAGE/TEXT/STRING flow of a screenshot-annotated feedback page.
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
	return app.Execute("analyze_feedback_flow", extract.FlowExtractor{}, args, stdout)
}
