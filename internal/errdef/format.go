package errdef

import (
	"bytes"
	"fmt"
	"strconv"
)

// Format renders variants back into canonical definition source. Parsing
// the result yields the same variants.
func Format(variants []VariantSpec) []byte {
	var b bytes.Buffer
	for _, v := range variants {
		b.WriteString(v.Name)

		if v.Kind == Struct {
			if len(v.Fields) == 0 {
				b.WriteString(" {}")
			} else {
				b.WriteString(" {\n")
				for i, f := range v.Fields {
					b.WriteByte('\t')
					if i == v.FromIndex {
						b.WriteString("#[from] ")
					}
					for _, a := range f.Attrs {
						b.WriteString(a.String())
						b.WriteByte(' ')
					}
					fmt.Fprintf(&b, "%s: %s,\n", f.Name, f.Type)
				}
				b.WriteByte('}')
			}
		}

		fmt.Fprintf(&b, " => %s", strconv.Quote(v.ShortDescription))
		if ld := v.LongDescription; ld != nil {
			fmt.Fprintf(&b, " (%s", strconv.Quote(ld.Template))
			for _, arg := range ld.Args {
				fmt.Fprintf(&b, ", %s", arg.Source)
			}
			b.WriteByte(')')
		}
		b.WriteString(",\n")
	}
	return b.Bytes()
}
