// Package compiler is the entry point that turns error definition source into
// generated artifacts. It holds no global state: every call is independent.
package compiler

import (
	"context"

	"github.com/specialistvlad/errdefgen/internal/ctxlog"
	"github.com/specialistvlad/errdefgen/internal/errdef"
	"github.com/specialistvlad/errdefgen/internal/generator"
	"github.com/specialistvlad/errdefgen/internal/lexer"
)

// Options configure a compilation.
type Options struct {
	generator.Options

	// ExprParser overrides the parser used for format arguments.
	ExprParser errdef.ExprParser
}

// Compile parses and validates the definition in s and generates its
// artifacts. On failure the error is a *diag.Failure and no artifacts are
// returned.
func Compile(ctx context.Context, s *lexer.Stream, opts Options) (*generator.Artifacts, error) {
	logger := ctxlog.FromContext(ctx).With("file", s.Filename())

	var parseOpts []errdef.Option
	if opts.ExprParser != nil {
		parseOpts = append(parseOpts, errdef.WithExprParser(opts.ExprParser))
	}

	logger.Debug("Parsing error definition.", "tokens", s.Len())
	variants, err := errdef.Parse(s, parseOpts...)
	if err != nil {
		logger.Debug("Error definition rejected.", "error", err)
		return nil, err
	}
	logger.Debug("Variants parsed.", "count", len(variants))

	arts := generator.Generate(variants, opts.Options)
	logger.Debug("Artifacts generated.", "type", opts.TypeName, "prefix", opts.VariantPrefix)
	return arts, nil
}

// CompileSource tokenizes src and compiles it. filename is only used in
// positions.
func CompileSource(ctx context.Context, filename string, src []byte, opts Options) (*generator.Artifacts, error) {
	s, err := lexer.Lex(filename, src)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("Error definition could not be tokenized.", "file", filename, "error", err)
		return nil, err
	}
	return Compile(ctx, s, opts)
}
