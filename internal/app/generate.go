package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/errdefgen/internal/compiler"
	"github.com/specialistvlad/errdefgen/internal/config"
	"github.com/specialistvlad/errdefgen/internal/ctxlog"
	"github.com/specialistvlad/errdefgen/internal/generator"
)

// generate runs every job in order and stops at the first failure. Files
// written by earlier jobs are kept.
func (a *App) generate(ctx context.Context, jobs []*config.Job) error {
	for _, job := range jobs {
		if err := a.generateJob(ctx, job); err != nil {
			return err
		}
	}
	a.logger.Info("Generation finished.", "files", len(jobs), "dry_run", a.config.DryRun)
	return nil
}

func (a *App) generateJob(ctx context.Context, job *config.Job) error {
	logger := ctxlog.FromContext(ctx).With("type", job.TypeName)
	ctx = ctxlog.WithLogger(ctx, logger)

	src := job.Definition
	if !job.Inline() {
		var err error
		if src, err = os.ReadFile(job.SourcePath); err != nil {
			return fmt.Errorf("failed to read definition: %w", err)
		}
	}
	a.sources[job.SourceName] = src
	logger.Debug("Definition loaded.", "source", job.SourceName, "bytes", len(src))

	arts, err := compiler.CompileSource(ctx, job.SourceName, src, compiler.Options{
		Options: generator.Options{
			TypeName:      job.TypeName,
			VariantPrefix: job.VariantPrefix,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", job.TypeName, err)
	}

	code, err := arts.Source(generator.FileOptions{
		Package: job.Package,
		Imports: job.Imports,
		Origin:  filepath.Base(job.SourceName),
	})
	if err != nil {
		return fmt.Errorf("failed to emit %s: %w", job.TypeName, err)
	}

	if a.config.DryRun {
		_, err := a.outW.Write(code)
		return err
	}
	if err := os.WriteFile(job.OutputPath, code, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", job.OutputPath, err)
	}
	logger.Info("Wrote generated file.", "path", job.OutputPath)
	return nil
}
