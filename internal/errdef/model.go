package errdef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/errdefgen/internal/goexpr"
)

// Kind tells unit variants from variants carrying fields.
type Kind int

const (
	Unit Kind = iota
	Struct
)

func (k Kind) String() string {
	switch k {
	case Unit:
		return "unit"
	case Struct:
		return "struct"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Attribute is a field attribute: a flag such as `#[from]`, or a key/value
// pair such as `#[json = "id"]` that becomes a struct tag.
type Attribute struct {
	Key      string
	Value    string
	HasValue bool
}

func (a Attribute) String() string {
	if !a.HasValue {
		return fmt.Sprintf("#[%s]", a.Key)
	}
	return fmt.Sprintf("#[%s = %s]", a.Key, strconv.Quote(a.Value))
}

// FieldSpec is one named field of a struct variant. Type is Go source and is
// never inspected beyond a syntax check.
type FieldSpec struct {
	Name  string
	Type  string
	Attrs []Attribute
}

// Tag renders the field's key/value attributes as a struct tag, without the
// surrounding quotes. It is empty when the field has none.
func (f FieldSpec) Tag() string {
	var parts []string
	for _, a := range f.Attrs {
		if a.HasValue {
			parts = append(parts, a.Key+":"+strconv.Quote(a.Value))
		}
	}
	return strings.Join(parts, " ")
}

// LongDescription is the optional templated elaboration of a variant's
// display text.
type LongDescription struct {
	Template string
	Args     []goexpr.Expr
}

// VariantSpec is one case of the generated error type.
type VariantSpec struct {
	Name   string
	Kind   Kind
	Fields []FieldSpec
	// FromIndex is the index of the field marked #[from], or -1.
	FromIndex        int
	ShortDescription string
	LongDescription  *LongDescription
	Doc              string
}

// From returns the field marked #[from], if any.
func (v VariantSpec) From() (FieldSpec, bool) {
	if v.Kind != Struct || v.FromIndex < 0 || v.FromIndex >= len(v.Fields) {
		return FieldSpec{}, false
	}
	return v.Fields[v.FromIndex], true
}

// Convertible reports whether the variant gets a one-argument conversion
// constructor: its only field must be the one marked #[from].
func (v VariantSpec) Convertible() bool {
	return v.Kind == Struct && len(v.Fields) == 1 && v.FromIndex == 0
}
