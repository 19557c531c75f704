package diag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeAt(filename string, line, col, byteOff, width int) hcl.Range {
	return hcl.Range{
		Filename: filename,
		Start:    hcl.Pos{Line: line, Column: col, Byte: byteOff},
		End:      hcl.Pos{Line: line, Column: col + width, Byte: byteOff + width},
	}
}

func TestFailure_Error(t *testing.T) {
	testCases := []struct {
		name     string
		failure  *Failure
		expected string
	}{
		{
			name:     "with position",
			failure:  Errorf(rangeAt("x.errdef", 3, 7, 20, 2), "expected %s", "=>"),
			expected: "x.errdef:3:7: expected =>",
		},
		{
			name:     "file only",
			failure:  Errorf(hcl.Range{Filename: "x.errdef"}, "empty"),
			expected: "x.errdef: empty",
		},
		{
			name:     "no range",
			failure:  Errorf(hcl.Range{}, "boom"),
			expected: "boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.failure.Error())
		})
	}
}

func TestFailure_WithDetailCopies(t *testing.T) {
	base := Errorf(rangeAt("x.errdef", 1, 1, 0, 1), "bad")
	detailed := base.WithDetail("because %d", 42)

	assert.Empty(t, base.Detail)
	assert.Equal(t, "because 42", detailed.Detail)
	assert.Equal(t, base.Summary, detailed.Summary)
}

func TestAsDiagnostics(t *testing.T) {
	failure := Errorf(rangeAt("x.errdef", 2, 5, 10, 3), "expected comma")

	t.Run("wrapped failure keeps its subject", func(t *testing.T) {
		diags := AsDiagnostics(fmt.Errorf("compiling: %w", failure))
		require.Len(t, diags, 1)
		assert.Equal(t, "expected comma", diags[0].Summary)
		require.NotNil(t, diags[0].Subject)
		assert.Equal(t, 2, diags[0].Subject.Start.Line)
	})

	t.Run("plain error", func(t *testing.T) {
		diags := AsDiagnostics(errors.New("disk full"))
		require.Len(t, diags, 1)
		assert.Equal(t, "disk full", diags[0].Summary)
		assert.Nil(t, diags[0].Subject)
	})

	t.Run("hcl diagnostics pass through", func(t *testing.T) {
		in := hcl.Diagnostics{{Severity: hcl.DiagError, Summary: "one"}, {Severity: hcl.DiagError, Summary: "two"}}
		assert.Len(t, AsDiagnostics(fmt.Errorf("load: %w", in)), 2)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, AsDiagnostics(nil))
	})
}

func TestWrite_IncludesSnippet(t *testing.T) {
	src := []byte("42 => \"nope\",\n")
	failure := Errorf(rangeAt("bad.errdef", 1, 1, 0, 2), "expected variant name")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, failure, map[string][]byte{"bad.errdef": src}, false))

	out := buf.String()
	assert.Contains(t, out, "expected variant name")
	assert.Contains(t, out, "bad.errdef")
	assert.Contains(t, out, `42 => "nope"`)
}

func TestDuplicateLabels(t *testing.T) {
	src := `
error "A" {}
error "B" {}
error "A" {}
other "A" {}
`
	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "m.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "error", LabelNames: []string{"name"}},
			{Type: "other", LabelNames: []string{"name"}},
		},
	})
	require.False(t, diags.HasErrors(), diags.Error())

	dups := DuplicateLabels(content.Blocks, "error")
	require.Len(t, dups, 1)
	assert.Equal(t, `Duplicate "error" block`, dups[0].Summary)
	assert.Equal(t, 4, dups[0].Subject.Start.Line)

	assert.Empty(t, DuplicateLabels(content.Blocks, "other"))
}
