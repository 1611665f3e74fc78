package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/htmlflow/internal/load"
)

// FileConfig is the optional YAML/JSON configuration file schema.
type FileConfig struct {
    Encoding string `yaml:"encoding" json:"encoding"`
    Verbose  bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset from fc. Flags and
// environment have already been applied, so they win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }
    if cfg.Encoding == "" && fc.Encoding != "" { cfg.Encoding = fc.Encoding }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig checks that the configuration can drive a run.
func ValidateConfig(cfg Config) error {
    if _, err := load.Lookup(cfg.Encoding); err != nil {
        return fmt.Errorf("config: %w", err)
    }
    return nil
}
