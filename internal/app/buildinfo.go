package app

// Build information populated via -ldflags at build time.
var (
    BuildVersion = "0.0.0-dev"
    BuildCommit  = "unknown"
)
