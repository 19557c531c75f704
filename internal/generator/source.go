package generator

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// baseImports are referenced by every generated file.
var baseImports = []string{"fmt"}

// Source splices the artifacts into a complete Go file and formats it.
// Imports that end up unused are dropped and missing standard library
// imports are added.
func (a *Artifacts) Source(opts FileOptions) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}

	var b bytes.Buffer
	if opts.Origin != "" {
		fmt.Fprintf(&b, "// Code generated by errdefgen from %s. DO NOT EDIT.\n\n", opts.Origin)
	} else {
		b.WriteString("// Code generated by errdefgen. DO NOT EDIT.\n\n")
	}
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)

	specs, err := importSpecs(opts.Imports)
	if err != nil {
		return nil, err
	}
	b.WriteString("import (\n")
	for _, spec := range specs {
		b.WriteString("\t" + spec + "\n")
	}
	b.WriteString(")\n")

	for _, part := range a.parts() {
		if part == "" {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(part)
	}

	out, err := imports.Process("", b.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

func (a *Artifacts) parts() []string {
	return []string{a.TypeShape, a.Debug, a.Display, a.Description, a.Cause, a.Conversions}
}

// importSpecs turns import entries into sorted, deduplicated import specs.
// An entry is either a bare path or a name followed by a quoted path.
func importSpecs(extra []string) ([]string, error) {
	seen := make(map[string]struct{})
	var specs []string
	for _, entry := range append(slices.Clone(baseImports), extra...) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		spec, err := importSpec(entry)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[spec]; ok {
			continue
		}
		seen[spec] = struct{}{}
		specs = append(specs, spec)
	}
	slices.Sort(specs)
	return specs, nil
}

func importSpec(entry string) (string, error) {
	name, path, named := strings.Cut(entry, " ")
	if !named {
		path, name = name, ""
	}
	path = strings.TrimSpace(path)
	if unquoted, err := strconv.Unquote(path); err == nil {
		path = unquoted
	}
	if path == "" || strings.ContainsAny(path, "\"` ") {
		return "", errors.New("invalid import " + strconv.Quote(entry))
	}
	if name != "" && name != "_" && name != "." && !token.IsIdentifier(name) {
		return "", errors.New("invalid import name in " + strconv.Quote(entry))
	}
	if name == "" {
		return strconv.Quote(path), nil
	}
	return name + " " + strconv.Quote(path), nil
}
