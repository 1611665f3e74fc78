package app

import (
    "context"
    "flag"
    "fmt"
    "io"
    "strings"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/htmlflow/internal/extract"
)

// UsageMessage is printed when no input path is given.
const UsageMessage = "Please provide a file path."

// Execute is the shared entry point of the command-line tools. It parses
// args (without the program name), resolves configuration with precedence
// flags > environment > config file, runs ex and returns the process exit
// code. Only the extraction result and the usage message go to stdout.
func Execute(name string, ex extract.Extractor, args []string, stdout io.Writer) int {
    fs := flag.NewFlagSet(name, flag.ContinueOnError)
    var (
        configPath string
        envFiles   string
        encoding   string
        verbose    bool
        version    bool
    )
    fs.StringVar(&configPath, "config", "", "Path to optional YAML/JSON config file")
    fs.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load (missing files are ignored)")
    fs.StringVar(&encoding, "encoding", "", "Input encoding label (default gb18030)")
    fs.BoolVar(&verbose, "v", false, "Verbose logging")
    fs.BoolVar(&version, "version", false, "Print version and exit")
    if err := fs.Parse(args); err != nil {
        return 2
    }
    if version {
        fmt.Fprintf(stdout, "%s %s (%s)\n", name, BuildVersion, BuildCommit)
        return 0
    }
    if fs.NArg() < 1 {
        fmt.Fprintln(stdout, UsageMessage)
        return 0
    }

    if err := LoadEnvFiles(splitList(envFiles)...); err != nil {
        log.Warn().Err(err).Msg("dotenv load failed")
    }

    cfg := Config{InputPath: fs.Arg(0), Encoding: encoding, Verbose: verbose}
    ApplyEnvToConfig(&cfg)
    if strings.TrimSpace(configPath) != "" {
        fc, err := LoadConfigFile(configPath)
        if err != nil {
            log.Error().Err(err).Str("path", configPath).Msg("load config")
            return 1
        }
        ApplyFileConfig(&cfg, fc)
    }
    if err := ValidateConfig(cfg); err != nil {
        log.Error().Err(err).Msg("invalid configuration")
        return 1
    }

    if cfg.Verbose {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    } else {
        zerolog.SetGlobalLevel(zerolog.InfoLevel)
    }
    log.Debug().Str("tool", name).Str("version", BuildVersion).Str("input", cfg.InputPath).Msg("starting")

    if err := Run(context.Background(), cfg, ex, stdout); err != nil {
        log.Error().Err(err).Str("input", cfg.InputPath).Msg("run failed")
        return 1
    }
    return 0
}

func splitList(s string) []string {
    parts := strings.Split(s, ",")
    list := make([]string, 0, len(parts))
    for _, p := range parts {
        if v := strings.TrimSpace(p); v != "" {
            list = append(list, v)
        }
    }
    return list
}
