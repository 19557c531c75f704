package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/errdefgen/internal/config"
	"github.com/specialistvlad/errdefgen/internal/ctxlog"
)

// writeManifest writes a manifest next to the definition at Path that
// reproduces the current flags. An existing manifest is never overwritten.
func (a *App) writeManifest(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	dir := filepath.Dir(a.config.Path)
	manifestPath := strings.TrimSuffix(a.config.Path, DefinitionExtension) + a.writer.Extension()

	job := a.definitionJob()
	job.SourcePath = filepath.Base(job.SourcePath)
	if rel, err := filepath.Rel(dir, job.OutputPath); err == nil {
		job.OutputPath = rel
	}
	m := &config.Manifest{
		Package: job.Package,
		Jobs:    []*config.Job{job},
	}

	if a.config.DryRun {
		return a.writer.Write(a.outW, m)
	}

	f, err := os.OpenFile(manifestPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("manifest %s already exists", manifestPath)
	}
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	if err := a.writer.Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	logger.Info("Wrote manifest.", "path", manifestPath)
	return nil
}
