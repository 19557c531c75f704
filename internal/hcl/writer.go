package hcl

import (
	"io"
	"slices"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/errdefgen/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Writer is the HCL implementation of config.Writer. Paths are written as
// given, so callers pass them relative to where the manifest will live.
type Writer struct{}

// NewWriter creates a new HCL manifest writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Extension implements config.Writer.
func (w *Writer) Extension() string {
	return ManifestExtension
}

// Write renders m as a manifest. Values equal to their defaults are left
// out.
func (w *Writer) Write(out io.Writer, m *config.Manifest) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if m.Package != "" {
		body.SetAttributeValue("package", cty.StringVal(m.Package))
	}
	if len(m.Imports) > 0 {
		body.SetAttributeValue("imports", stringList(m.Imports))
	}

	for _, job := range m.Jobs {
		if len(body.Attributes()) > 0 || len(body.Blocks()) > 0 {
			body.AppendNewline()
		}
		b := body.AppendNewBlock(errorBlockType, []string{job.TypeName}).Body()

		if job.Inline() {
			b.SetAttributeValue("definition", cty.StringVal(string(job.Definition)))
		} else {
			b.SetAttributeValue("source", cty.StringVal(job.SourcePath))
		}
		if job.OutputPath != "" && job.OutputPath != config.DefaultOutput(job.TypeName) {
			b.SetAttributeValue("output", cty.StringVal(job.OutputPath))
		}
		if job.Package != "" && job.Package != m.Package {
			b.SetAttributeValue("package", cty.StringVal(job.Package))
		}
		if job.VariantPrefix != "" {
			b.SetAttributeValue("variant_prefix", cty.StringVal(job.VariantPrefix))
		}
		// Top-level imports are merged into every job on load.
		if own := without(job.Imports, m.Imports); len(own) > 0 {
			b.SetAttributeValue("imports", stringList(own))
		}
	}

	_, err := f.WriteTo(out)
	return err
}

func without(items, drop []string) []string {
	var out []string
	for _, s := range items {
		if !slices.Contains(drop, s) {
			out = append(out, s)
		}
	}
	return out
}

func stringList(items []string) cty.Value {
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
