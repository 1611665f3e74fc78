package app

import (
    "os"
    "strings"
)

// Environment variables read by ApplyEnvToConfig.
const (
    EnvEncoding = "HTMLFLOW_ENCODING"
    EnvVerbose  = "VERBOSE"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.Encoding == "" {
        cfg.Encoding = strings.TrimSpace(os.Getenv(EnvEncoding))
    }
    if !cfg.Verbose {
        switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvVerbose))) {
        case "1", "true", "yes", "on":
            cfg.Verbose = true
        }
    }
}
