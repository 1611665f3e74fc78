package app

// Config holds runtime configuration for one extraction run.
type Config struct {
    InputPath string

    // Encoding is a WHATWG label for the input bytes. Empty means GB18030.
    Encoding string

    Verbose bool
}
