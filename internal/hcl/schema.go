package hcl

import "github.com/hashicorp/hcl/v2"

const errorBlockType = "error"

// manifestRoot decodes the top level of a manifest file.
type manifestRoot struct {
	Package string        `hcl:"package,optional"`
	Imports []string      `hcl:"imports,optional"`
	Errors  []*errorBlock `hcl:"error,block"`
}

// errorBlock is one `error "Name" { ... }` block.
type errorBlock struct {
	Name          string         `hcl:"name,label"`
	Source        string         `hcl:"source,optional"`
	Definition    string         `hcl:"definition,optional"`
	Output        hcl.Expression `hcl:"output,optional"`
	Package       string         `hcl:"package,optional"`
	VariantPrefix string         `hcl:"variant_prefix,optional"`
	Imports       []string       `hcl:"imports,optional"`
}

// blockSchema locates error blocks before decoding, for their ranges.
var blockSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: errorBlockType, LabelNames: []string{"name"}},
	},
}
