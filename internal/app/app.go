package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"path/filepath"

	"github.com/specialistvlad/errdefgen/internal/config"
	"github.com/specialistvlad/errdefgen/internal/ctxlog"
	"github.com/specialistvlad/errdefgen/internal/diag"
)

// App encapsulates the configuration and collaborators of one run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	writer config.Writer

	// sources holds every definition read, for diagnostics.
	sources map[string][]byte
}

// NewApp creates an App. Generated code and manifests printed in dry-run
// mode go to outW; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, writer config.Writer) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  loader,
		writer:  writer,
		sources: make(map[string][]byte),
	}
}

// Run executes the mode selected by the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.Path)

	switch {
	case a.config.Format:
		return a.formatDefinitions(ctx)
	case a.config.Init:
		return a.writeManifest(ctx)
	case a.config.IsDefinition():
		return a.generate(ctx, []*config.Job{a.definitionJob()})
	}

	manifest, err := a.loader.Load(ctx, a.config.Path)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	if len(manifest.Jobs) == 0 {
		a.logger.Warn("Manifest declares no error types, nothing to generate.")
		return nil
	}
	return a.generate(ctx, manifest.Jobs)
}

// WriteDiagnostics renders err, with source snippets for any file the run
// has read.
func (a *App) WriteDiagnostics(w io.Writer, err error) error {
	sources := maps.Clone(a.loader.Sources())
	if sources == nil {
		sources = make(map[string][]byte)
	}
	maps.Copy(sources, a.sources)
	return diag.Write(w, err, sources, a.config.Color)
}

// definitionJob builds the job for a single definition from the flags.
func (a *App) definitionJob() *config.Job {
	output := a.config.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(a.config.Path), config.DefaultOutput(a.config.TypeName))
	}
	return &config.Job{
		TypeName:      a.config.TypeName,
		Package:       a.config.Package,
		VariantPrefix: a.config.VariantPrefix,
		Imports:       a.config.Imports,
		SourcePath:    a.config.Path,
		SourceName:    a.config.Path,
		OutputPath:    output,
	}
}
