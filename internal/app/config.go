package app

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
)

// DefinitionExtension is the file extension of error definitions.
const DefinitionExtension = ".errdef"

// Config holds everything an App needs to run.
type Config struct {
	// Path is a manifest, a directory of manifests or a single definition.
	Path string

	// Single-definition settings, ignored for manifests.
	TypeName      string
	Package       string
	Output        string
	VariantPrefix string
	Imports       []string

	Format bool // rewrite definitions canonically
	DryRun bool // print instead of writing files
	Init   bool // write a manifest for a single definition

	LogFormat string
	LogLevel  string
	// Color enables ANSI colors in rendered diagnostics.
	Color bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	if cfg.Format && cfg.Init {
		return nil, errors.New("formatting and manifest initialization cannot be combined")
	}
	if cfg.Init && !cfg.IsDefinition() {
		return nil, fmt.Errorf("manifest initialization needs a %s file, got %s", DefinitionExtension, cfg.Path)
	}

	if cfg.IsDefinition() && !cfg.Format {
		if cfg.TypeName == "" {
			return nil, fmt.Errorf("a type name is required to compile %s", cfg.Path)
		}
		if cfg.Package == "" {
			return nil, fmt.Errorf("a package name is required to compile %s", cfg.Path)
		}
	}
	if !cfg.IsDefinition() && (cfg.TypeName != "" || cfg.Package != "" || cfg.Output != "" || cfg.VariantPrefix != "" || len(cfg.Imports) > 0) {
		return nil, fmt.Errorf("type, package, output, prefix and imports only apply to a single %s file", DefinitionExtension)
	}

	if cfg.TypeName != "" && !token.IsIdentifier(cfg.TypeName) {
		return nil, fmt.Errorf("type name %q is not a valid Go identifier", cfg.TypeName)
	}
	if cfg.Package != "" && !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("package name %q is not a valid Go identifier", cfg.Package)
	}

	return &cfg, nil
}

// IsDefinition reports whether Path names a single definition file.
func (c *Config) IsDefinition() bool {
	return filepath.Ext(c.Path) == DefinitionExtension
}
