package diag

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
)

// Failure is a fatal parse or validation failure at a source position.
type Failure struct {
	Summary string
	Detail  string
	Subject hcl.Range
}

// Errorf creates a Failure for the given range.
func Errorf(subject hcl.Range, format string, args ...any) *Failure {
	return &Failure{
		Summary: fmt.Sprintf(format, args...),
		Subject: subject,
	}
}

// WithDetail returns a copy of the failure carrying an extra explanation.
func (f *Failure) WithDetail(format string, args ...any) *Failure {
	out := *f
	out.Detail = fmt.Sprintf(format, args...)
	return &out
}

// Error renders the failure as `file:line:col: summary`.
func (f *Failure) Error() string {
	if f.Subject.Start.Line == 0 {
		if f.Subject.Filename == "" {
			return f.Summary
		}
		return fmt.Sprintf("%s: %s", f.Subject.Filename, f.Summary)
	}
	return fmt.Sprintf("%s:%d:%d: %s", f.Subject.Filename, f.Subject.Start.Line, f.Subject.Start.Column, f.Summary)
}

// Diagnostics converts the failure into a single error diagnostic.
func (f *Failure) Diagnostics() hcl.Diagnostics {
	subject := f.Subject
	return hcl.Diagnostics{
		&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  f.Summary,
			Detail:   f.Detail,
			Subject:  &subject,
		},
	}
}

// AsDiagnostics extracts diagnostics from an arbitrary error. Wrapped
// failures and hcl.Diagnostics keep their source ranges; anything else
// becomes a diagnostic without a subject.
func AsDiagnostics(err error) hcl.Diagnostics {
	if err == nil {
		return nil
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Diagnostics()
	}
	var diags hcl.Diagnostics
	if errors.As(err, &diags) {
		return diags
	}
	return hcl.Diagnostics{
		&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  err.Error(),
		},
	}
}

// Write renders err with source snippets. sources maps file names to their
// contents; files missing from the map are reported without a snippet.
func Write(w io.Writer, err error, sources map[string][]byte, color bool) error {
	files := make(map[string]*hcl.File, len(sources))
	for name, src := range sources {
		files[name] = &hcl.File{Bytes: src}
	}
	wr := hcl.NewDiagnosticTextWriter(w, files, 78, color)
	return wr.WriteDiagnostics(AsDiagnostics(err))
}
