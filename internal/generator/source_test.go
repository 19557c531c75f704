package generator

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importPaths(f *ast.File) []string {
	var paths []string
	for _, spec := range f.Imports {
		p, _ := strconv.Unquote(spec.Path.Value)
		paths = append(paths, p)
	}
	return paths
}

func TestSource_Example(t *testing.T) {
	arts := Generate(mustParse(t, exampleDefinition), Options{TypeName: "ExampleError"})

	src, err := arts.Source(FileOptions{Package: "example", Imports: []string{"io/fs"}, Origin: "example.errdef"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(src), "// Code generated by errdefgen from example.errdef. DO NOT EDIT.\n\npackage example\n"))

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "example_gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source must parse:\n%s", src)
	assert.ElementsMatch(t, []string{"fmt", "io/fs"}, importPaths(file))
	typeCheck(t, "example", src)
}

// typeCheck parses and type-checks a generated file against the standard
// library sources.
func typeCheck(t *testing.T, pkg string, src []byte) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, pkg+"_gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source must parse:\n%s", src)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check(pkg, fset, []*ast.File{file}, nil)
	require.NoError(t, err, "generated source must type-check:\n%s", src)
}

func TestSource_TypeChecks(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		imports []string
	}{
		{
			name: "function literal parameter shadows a field",
			src:  `A { x: int } => "a" ("{}", func(x int) int { return x }(1))`,
		},
		{
			name: "function literal capturing a field",
			src:  `A { x: int, y: int } => "a" ("{}", func(n int) int { return n + y }(2))`,
		},
		{
			name: "locals declared inside a function literal",
			src:  `A { items: []int } => "a" ("{}", func() (n int) { for _, v := range items { n += v }; return n }())`,
		},
		{
			name: "field named like the receiver",
			src:  `A { e: int, e_: string } => "a" ("{} {:?}", e, e_)`,
		},
		{
			name:    "pointer cause",
			src:     `A { #[from] cause: *fs.PathError } => "a" ("{}", cause)`,
			imports: []string{"io/fs"},
		},
		{
			name: "unit variants only",
			src:  `A => "a", B {} => "b" ("literal {{b}}")`,
		},
		{
			name: "percent signs everywhere",
			src:  `A { p: int } => "50%", B { q: int } => "b%" ("{}%", q)`,
		},
		{
			name: "struct tags and unused fields",
			src:  `A { #[json = "id"] id: int, name: string } => "a" ("{}", len(name))`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			arts := Generate(mustParse(t, tc.src), Options{TypeName: "Failure"})

			// --- Act ---
			src, err := arts.Source(FileOptions{Package: "checked", Imports: tc.imports})

			// --- Assert ---
			require.NoError(t, err)
			typeCheck(t, "checked", src)
		})
	}
}

func TestSource_DropsUnusedImports(t *testing.T) {
	arts := Generate(nil, Options{TypeName: "Nothing"})

	src, err := arts.Source(FileOptions{Package: "empty", Imports: []string{"io/fs"}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(src), "// Code generated by errdefgen. DO NOT EDIT.\n"))
	file, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"fmt"}, importPaths(file))
}

func TestSource_InvalidOptions(t *testing.T) {
	arts := Generate(nil, Options{})

	testCases := []struct {
		name string
		opts FileOptions
		msg  string
	}{
		{name: "missing package", opts: FileOptions{}, msg: `invalid package name ""`},
		{name: "package is not an identifier", opts: FileOptions{Package: "my-pkg"}, msg: `invalid package name "my-pkg"`},
		{name: "bad import", opts: FileOptions{Package: "p", Imports: []string{`"a b"`}}, msg: `invalid import`},
		{name: "bad import name", opts: FileOptions{Package: "p", Imports: []string{`1x "io/fs"`}}, msg: `invalid import name`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := arts.Source(tc.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestImportSpecs(t *testing.T) {
	specs, err := importSpecs([]string{"io/fs", " fmt ", `pb "example.com/proto"`, "io/fs", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{`"fmt"`, `"io/fs"`, `pb "example.com/proto"`}, specs)
}
