package diag

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// DuplicateLabels reports every block of the given type whose first label
// was already used by an earlier block of the same type.
func DuplicateLabels(blocks hcl.Blocks, blockType string) hcl.Diagnostics {
	var diags hcl.Diagnostics
	seen := make(map[string]*hcl.Block)

	for _, block := range blocks {
		if block.Type != blockType || len(block.Labels) == 0 {
			continue
		}
		label := block.Labels[0]
		if prev, ok := seen[label]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate %q block", blockType),
				Detail:   fmt.Sprintf("A %s block labelled %q was already declared at %s.", blockType, label, prev.DefRange.String()),
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[label] = block
	}

	return diags
}
