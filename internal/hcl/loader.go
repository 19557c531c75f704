package hcl

import (
	"context"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/errdefgen/internal/config"
	"github.com/specialistvlad/errdefgen/internal/ctxlog"
	"github.com/specialistvlad/errdefgen/internal/diag"
	"github.com/specialistvlad/errdefgen/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ManifestExtension is the file extension of HCL manifests.
const ManifestExtension = ".hcl"

// Loader is the HCL implementation of config.Loader. It keeps the parsed
// files so diagnostics can be rendered with source snippets.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Sources returns the contents of every manifest file parsed so far, keyed
// by file name.
func (l *Loader) Sources() map[string][]byte {
	return l.parser.Sources()
}

// Load parses the manifests at paths. A directory contributes every .hcl
// file below it.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findManifests(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s manifests found in %v", ManifestExtension, paths)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	manifest := &config.Manifest{}
	outputs := make(map[string]string)

	for _, file := range files {
		root, jobs, err := l.loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		if len(files) == 1 {
			manifest.Package = root.Package
			manifest.Imports = root.Imports
		}
		for _, job := range jobs {
			if prev, ok := outputs[job.OutputPath]; ok {
				return nil, fmt.Errorf("error types %s and %s are both written to %s", prev, job.TypeName, job.OutputPath)
			}
			outputs[job.OutputPath] = job.TypeName
			manifest.Jobs = append(manifest.Jobs, job)
		}
	}

	logger.Debug("HCL loading complete.", "jobs", len(manifest.Jobs))
	return manifest, nil
}

func findManifests(paths []string) ([]string, error) {
	var all []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			all = append(all, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ManifestExtension)
		if err != nil {
			return nil, err
		}
		all = append(all, found...)
	}
	slices.Sort(all)
	return slices.Compact(all), nil
}

func (l *Loader) loadFile(ctx context.Context, file string) (*manifestRoot, []*config.Job, error) {
	logger := ctxlog.FromContext(ctx).With("manifest", file)
	ctx = ctxlog.WithLogger(ctx, logger)

	hclFile, diags := l.parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
	}

	content, _, diags := hclFile.Body.PartialContent(blockSchema)
	diags = append(diags, diag.DuplicateLabels(content.Blocks, errorBlockType)...)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("invalid manifest %s: %w", file, diags)
	}

	var root manifestRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
	}

	dir := filepath.Dir(file)
	var jobs []*config.Job
	for i, block := range root.Errors {
		job, diags := translateErrorBlock(ctx, file, dir, &root, block, content.Blocks[i].DefRange)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("invalid manifest %s: %w", file, diags)
		}
		logger.Debug("Translated error block.", "job", job.String())
		jobs = append(jobs, job)
	}
	return &root, jobs, nil
}

// translateErrorBlock resolves an error block against the file-level
// defaults into a job.
func translateErrorBlock(ctx context.Context, file, dir string, root *manifestRoot, b *errorBlock, rng hcl.Range) (*config.Job, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	if !token.IsIdentifier(b.Name) {
		diags = append(diags, errorDiag(rng, "Invalid error name", fmt.Sprintf("%q is not a valid Go identifier.", b.Name)))
	}

	job := &config.Job{
		TypeName:      b.Name,
		Package:       b.Package,
		VariantPrefix: b.VariantPrefix,
		Imports:       append(slices.Clone(root.Imports), b.Imports...),
	}
	if job.Package == "" {
		job.Package = root.Package
	}
	if job.Package == "" {
		diags = append(diags, errorDiag(rng, "Missing package", "Set package in the error block or at the top of the manifest."))
	}

	switch {
	case b.Source != "" && b.Definition != "":
		diags = append(diags, errorDiag(rng, "Conflicting definitions", "Only one of source and definition may be set."))
	case b.Source != "":
		job.SourcePath = resolve(dir, b.Source)
		job.SourceName = job.SourcePath
	case b.Definition != "":
		job.Definition = []byte(b.Definition)
		job.SourceName = fmt.Sprintf("%s[%s]", file, b.Name)
	default:
		diags = append(diags, errorDiag(rng, "Missing definition", "An error block needs either source or definition."))
	}
	if diags.HasErrors() {
		return nil, diags
	}

	output := config.DefaultOutput(b.Name)
	if isExprDefined(ctx, b.Output, "output") {
		val, moreDiags := evalOutput(b.Output, outputEvalContext(b.Name, job.Package, b.Source))
		if moreDiags.HasErrors() {
			return nil, moreDiags
		}
		output = val
	}
	job.OutputPath = resolve(dir, output)

	return job, nil
}

func evalOutput(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil || str.IsNull() || !str.IsKnown() || str.AsString() == "" {
		return "", hcl.Diagnostics{errorDiag(expr.Range(), "Invalid output", "output must be a non-empty string.")}
	}
	return str.AsString(), nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
