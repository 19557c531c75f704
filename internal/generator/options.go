package generator

// DefaultTypeName names the generated interface when Options leaves it
// empty.
const DefaultTypeName = "Error"

// Options control how variants are named in the generated code.
type Options struct {
	// TypeName is the name of the sealed interface every variant implements.
	TypeName string
	// VariantPrefix is prepended to each variant's struct name.
	VariantPrefix string
}

func (o Options) typeName() string {
	if o.TypeName == "" {
		return DefaultTypeName
	}
	return o.TypeName
}

// FileOptions describe the file the artifacts are spliced into.
type FileOptions struct {
	Package string
	// Imports are extra import paths needed by field types or format
	// arguments. An entry may carry a name: `pb "example.com/proto"`.
	Imports []string
	// Origin is mentioned in the generated-code header.
	Origin string
}
