package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/errdefgen/internal/ctxlog"
	"github.com/specialistvlad/errdefgen/internal/diag"
	"github.com/specialistvlad/errdefgen/internal/errdef"
	"github.com/specialistvlad/errdefgen/internal/fsutil"
	"github.com/specialistvlad/errdefgen/internal/lexer"
)

// formatDefinitions rewrites the definition at Path, or every definition
// below it, in canonical form.
func (a *App) formatDefinitions(ctx context.Context) error {
	files := []string{a.config.Path}
	if !a.config.IsDefinition() {
		found, err := fsutil.FindFilesByExtension(a.config.Path, DefinitionExtension)
		if err != nil {
			return fmt.Errorf("failed to find definitions: %w", err)
		}
		files = found
	}

	changed := 0
	for _, file := range files {
		rewritten, err := a.formatFile(ctx, file)
		if err != nil {
			return err
		}
		if rewritten {
			changed++
		}
	}
	a.logger.Info("Formatting finished.", "files", len(files), "changed", changed)
	return nil
}

func (a *App) formatFile(ctx context.Context, path string) (bool, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read definition: %w", err)
	}
	a.sources[path] = src

	s, err := lexer.Lex(path, src)
	if err != nil {
		return false, err
	}
	header, err := leadingComments(s)
	if err != nil {
		return false, err
	}
	variants, err := errdef.Parse(s)
	if err != nil {
		return false, err
	}

	body := errdef.Format(variants)
	if len(body) == 0 {
		header = bytes.TrimSuffix(header, []byte("\n"))
	}
	formatted := append(header, body...)
	if bytes.Equal(formatted, src) {
		logger.Debug("Definition already formatted.")
		return false, nil
	}

	if a.config.DryRun {
		_, err := a.outW.Write(formatted)
		return true, err
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Formatted definition.")
	return true, nil
}

// leadingComments returns the comment block preceding the first variant,
// which formatting keeps. Any later comment would be lost, so it is an
// error.
func leadingComments(s *lexer.Stream) ([]byte, error) {
	first := s.Peek().Range.Start.Byte
	var end int
	for _, c := range s.Comments() {
		if c.Start.Byte > first {
			return nil, diag.Errorf(c, "comment would be lost by formatting").
				WithDetail("Only comments before the first variant are kept.")
		}
		end = c.End.Byte
	}
	if end == 0 {
		return nil, nil
	}
	header := bytes.TrimRight(s.Source()[:end], " \t\r\n")
	return append(bytes.Clone(header), '\n', '\n'), nil
}
