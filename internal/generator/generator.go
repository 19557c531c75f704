package generator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/specialistvlad/errdefgen/internal/errdef"
	"github.com/specialistvlad/errdefgen/internal/fmtstr"
)

const commentWidth = 76

// separator joins the short description and the long one in display text.
// It is written even when there is no long description.
const separator = ". "

// Artifacts holds the generated Go declarations, one fragment per concern.
type Artifacts struct {
	TypeShape   string
	Debug       string
	Display     string
	Description string
	Cause       string
	Conversions string
}

// Generate renders variants into Artifacts. It never fails: variants are
// expected to come from errdef.Parse, which has already validated them.
func Generate(variants []errdef.VariantSpec, opts Options) *Artifacts {
	g := &gen{typeName: opts.typeName(), prefix: opts.VariantPrefix}

	var shape, debug, display, desc, cause, conv strings.Builder
	g.writeInterface(&shape)
	for _, v := range variants {
		g.writeStruct(&shape, v)
		g.writeDebug(&debug, v)
		g.writeDisplay(&display, v)
		g.writeDescription(&desc, v)
		g.writeCause(&cause, v)
		if v.Convertible() {
			g.writeConversion(&conv, v)
		}
	}

	return &Artifacts{
		TypeShape:   shape.String(),
		Debug:       debug.String(),
		Display:     display.String(),
		Description: desc.String(),
		Cause:       cause.String(),
		Conversions: conv.String(),
	}
}

type gen struct {
	typeName string
	prefix   string
}

func (g *gen) structName(v errdef.VariantSpec) string {
	return g.prefix + v.Name
}

// receiver picks a receiver name that no field of v shadows.
func receiver(v errdef.VariantSpec) string {
	name := "e"
	for slices.ContainsFunc(v.Fields, func(f errdef.FieldSpec) bool { return f.Name == name }) {
		name += "_"
	}
	return name
}

func writeComment(b *strings.Builder, text string) {
	for _, line := range strings.Split(wordwrap.WrapString(text, commentWidth), "\n") {
		b.WriteString("//")
		if line != "" {
			b.WriteString(" " + line)
		}
		b.WriteByte('\n')
	}
}

func (g *gen) writeInterface(b *strings.Builder) {
	writeComment(b, fmt.Sprintf("%s is implemented by the variants declared in this file and nothing else.", g.typeName))
	fmt.Fprintf(b, "type %s interface {\n", g.typeName)
	b.WriteString("\terror\n")
	b.WriteString("\tfmt.GoStringer\n")
	b.WriteString("\tDescription() string\n")
	b.WriteString("\tUnwrap() error\n")
	fmt.Fprintf(b, "\tis%s()\n", g.typeName)
	b.WriteString("}\n")
}

func (g *gen) writeStruct(b *strings.Builder, v errdef.VariantSpec) {
	name := g.structName(v)
	b.WriteByte('\n')
	writeComment(b, fmt.Sprintf("%s: %s", name, v.Doc))
	if len(v.Fields) == 0 {
		fmt.Fprintf(b, "type %s struct{}\n", name)
	} else {
		fmt.Fprintf(b, "type %s struct {\n", name)
		for _, f := range v.Fields {
			fmt.Fprintf(b, "\t%s %s", f.Name, f.Type)
			if tag := f.Tag(); tag != "" {
				b.WriteString(" " + quoteTag(tag))
			}
			b.WriteByte('\n')
		}
		b.WriteString("}\n")
	}
	fmt.Fprintf(b, "\nfunc (%s) is%s() {}\n", name, g.typeName)
}

func quoteTag(tag string) string {
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}

// constantDisplay returns the display text of v when it does not depend on
// any field value.
func constantDisplay(v errdef.VariantSpec) (string, bool) {
	head := v.ShortDescription + separator
	ld := v.LongDescription
	if ld == nil {
		return head, true
	}
	tmpl, err := fmtstr.Parse(ld.Template)
	if err != nil {
		// Unreachable for parsed variants; keep the raw text.
		return head + ld.Template, true
	}
	if text, ok := tmpl.Literal(); ok && len(ld.Args) == 0 {
		return head + text, true
	}
	return "", false
}

func (g *gen) writeDebug(b *strings.Builder, v errdef.VariantSpec) {
	recv := receiver(v)

	var format strings.Builder
	var args []string
	format.WriteString(v.Name)
	if len(v.Fields) > 0 {
		format.WriteString(" { ")
		for i, f := range v.Fields {
			if i > 0 {
				format.WriteString(", ")
			}
			format.WriteString(f.Name + ": %+v")
			args = append(args, recv+"."+f.Name)
		}
		format.WriteString(" }")
	}

	// The dangling separator's blank is the only text dropped from the
	// embedded display.
	text, constant := constantDisplay(v)
	if v.LongDescription == nil {
		text = v.ShortDescription + "."
	}

	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	switch {
	case constant && len(args) == 0:
		fmt.Fprintf(b, "func (%s) GoString() string {\n", g.structName(v))
		fmt.Fprintf(b, "\treturn %s\n", strconv.Quote(format.String()+" /* "+text+" */"))
	case constant:
		format.WriteString(" /* " + strings.ReplaceAll(text, "%", "%%") + " */")
		fmt.Fprintf(b, "func (%s %s) GoString() string {\n", recv, g.structName(v))
		fmt.Fprintf(b, "\treturn fmt.Sprintf(%s, %s)\n", strconv.Quote(format.String()), strings.Join(args, ", "))
	default:
		format.WriteString(" /* %s */")
		args = append(args, recv+".Error()")
		fmt.Fprintf(b, "func (%s %s) GoString() string {\n", recv, g.structName(v))
		fmt.Fprintf(b, "\treturn fmt.Sprintf(%s, %s)\n", strconv.Quote(format.String()), strings.Join(args, ", "))
	}
	b.WriteString("}\n")
}

func (g *gen) writeDisplay(b *strings.Builder, v errdef.VariantSpec) {
	recv := receiver(v)

	var body []string
	if text, ok := constantDisplay(v); ok {
		body = append(body, "return "+strconv.Quote(text))
	} else {
		ld := v.LongDescription
		tmpl := fmtstr.MustParse(ld.Template)
		if names := boundFields(v, ld); len(names) > 0 {
			values := make([]string, len(names))
			for i, n := range names {
				values[i] = recv + "." + n
			}
			body = append(body, fmt.Sprintf("%s := %s", strings.Join(names, ", "), strings.Join(values, ", ")))
		}
		args := []string{strconv.Quote(tmpl.Printf())}
		for _, a := range ld.Args {
			args = append(args, a.Source)
		}
		head := v.ShortDescription + separator
		body = append(body, fmt.Sprintf("return %s + fmt.Sprintf(%s)", strconv.Quote(head), strings.Join(args, ", ")))
	}

	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	if len(body) == 1 {
		fmt.Fprintf(b, "func (%s) Error() string {\n", g.structName(v))
	} else {
		fmt.Fprintf(b, "func (%s %s) Error() string {\n", recv, g.structName(v))
	}
	for _, line := range body {
		b.WriteString("\t" + line + "\n")
	}
	b.WriteString("}\n")
}

// boundFields lists, in declaration order, the fields the long description's
// arguments refer to. Only those are bound as locals.
func boundFields(v errdef.VariantSpec, ld *errdef.LongDescription) []string {
	var names []string
	for _, f := range v.Fields {
		for _, a := range ld.Args {
			if a.References(f.Name) {
				names = append(names, f.Name)
				break
			}
		}
	}
	return names
}

func (g *gen) writeDescription(b *strings.Builder, v errdef.VariantSpec) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	fmt.Fprintf(b, "func (%s) Description() string {\n", g.structName(v))
	fmt.Fprintf(b, "\treturn %s\n", strconv.Quote(v.ShortDescription))
	b.WriteString("}\n")
}

func (g *gen) writeCause(b *strings.Builder, v errdef.VariantSpec) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	from, ok := v.From()
	if !ok {
		fmt.Fprintf(b, "func (%s) Unwrap() error {\n\treturn nil\n}\n", g.structName(v))
		return
	}
	recv := receiver(v)
	fmt.Fprintf(b, "func (%s %s) Unwrap() error {\n", recv, g.structName(v))
	if strings.HasPrefix(from.Type, "*") {
		// A nil pointer stored in an error interface is not a nil error.
		fmt.Fprintf(b, "\tif %s.%s == nil {\n\t\treturn nil\n\t}\n", recv, from.Name)
	}
	fmt.Fprintf(b, "\treturn %s.%s\n", recv, from.Name)
	b.WriteString("}\n")
}

func (g *gen) writeConversion(b *strings.Builder, v errdef.VariantSpec) {
	from, _ := v.From()
	name := g.structName(v)
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	writeComment(b, fmt.Sprintf("Wrap%s wraps %s in %s %s.", name, from.Name, article(name), name))
	fmt.Fprintf(b, "func Wrap%s(%s %s) %s {\n", name, from.Name, from.Type, g.typeName)
	fmt.Fprintf(b, "\treturn %s{%s: %s}\n", name, from.Name, from.Name)
	b.WriteString("}\n")
}

// article picks the indefinite article for an identifier by its first
// letter.
func article(word string) string {
	if word != "" && strings.ContainsRune("AEIOUaeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}
