package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/errdefgen/internal/errdef"
	"github.com/specialistvlad/errdefgen/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDefinition = `
AVariant                     => "Unit-like variant",
AVariantWithALongDescription => "Unit-like variant" ("A more verbose description"),
AVariantWithArgs {
	flim: uint32,
	flam: uint32,
} => "Variant with args" ("This is a format string. flim is {}. flam is {}.", flim, flam),
AVariantWithACause {
	blah: bool,
	#[from] cause: *fs.PathError,
} => "Variant with a cause" ("Unwrap() would return {}", cause),
AVariantWithJustACause {
	#[from] blah: error
} => "This variant can be made from an error"
`

func mustParse(t *testing.T, src string) []errdef.VariantSpec {
	t.Helper()
	s, err := lexer.Lex("test.errdef", []byte(src))
	require.NoError(t, err)
	variants, err := errdef.Parse(s)
	require.NoError(t, err)
	return variants
}

func TestGenerate_Example(t *testing.T) {
	arts := Generate(mustParse(t, exampleDefinition), Options{TypeName: "ExampleError"})

	t.Run("type shape", func(t *testing.T) {
		assert.Contains(t, arts.TypeShape, "type ExampleError interface {\n\terror\n\tfmt.GoStringer\n\tDescription() string\n\tUnwrap() error\n\tisExampleError()\n}\n")
		assert.Contains(t, arts.TypeShape, "// AVariant: Unit-like variant.\ntype AVariant struct{}\n")
		assert.Contains(t, arts.TypeShape, "type AVariantWithACause struct {\n\tblah bool\n\tcause *fs.PathError\n}\n")
		assert.Contains(t, arts.TypeShape, "func (AVariantWithJustACause) isExampleError() {}\n")
	})

	t.Run("debug", func(t *testing.T) {
		assert.Contains(t, arts.Debug, "func (AVariant) GoString() string {\n\treturn \"AVariant /* Unit-like variant. */\"\n}\n")
		assert.Contains(t, arts.Debug, "func (AVariantWithALongDescription) GoString() string {\n\treturn \"AVariantWithALongDescription /* Unit-like variant. A more verbose description */\"\n}\n")
		assert.Contains(t, arts.Debug, `fmt.Sprintf("AVariantWithArgs { flim: %+v, flam: %+v } /* %s */", e.flim, e.flam, e.Error())`)
		assert.Contains(t, arts.Debug, `fmt.Sprintf("AVariantWithJustACause { blah: %+v } /* This variant can be made from an error. */", e.blah)`)
	})

	t.Run("display", func(t *testing.T) {
		assert.Contains(t, arts.Display, "func (AVariant) Error() string {\n\treturn \"Unit-like variant. \"\n}\n")
		assert.Contains(t, arts.Display, "func (AVariantWithALongDescription) Error() string {\n\treturn \"Unit-like variant. A more verbose description\"\n}\n")
		assert.Contains(t, arts.Display, "func (e AVariantWithArgs) Error() string {\n"+
			"\tflim, flam := e.flim, e.flam\n"+
			"\treturn \"Variant with args. \" + fmt.Sprintf(\"This is a format string. flim is %v. flam is %v.\", flim, flam)\n"+
			"}\n")
		assert.Contains(t, arts.Display, "\tcause := e.cause\n", "only referenced fields are bound")
		assert.NotContains(t, arts.Display, "blah := e.blah")
		assert.Contains(t, arts.Display, "func (AVariantWithJustACause) Error() string {\n\treturn \"This variant can be made from an error. \"\n}\n")
	})

	t.Run("description", func(t *testing.T) {
		assert.Contains(t, arts.Description, "func (AVariantWithArgs) Description() string {\n\treturn \"Variant with args\"\n}\n")
	})

	t.Run("cause", func(t *testing.T) {
		assert.Contains(t, arts.Cause, "func (AVariant) Unwrap() error {\n\treturn nil\n}\n")
		assert.Contains(t, arts.Cause, "func (e AVariantWithACause) Unwrap() error {\n\tif e.cause == nil {\n\t\treturn nil\n\t}\n\treturn e.cause\n}\n", "pointer causes never leak a typed nil")
		assert.Contains(t, arts.Cause, "func (e AVariantWithJustACause) Unwrap() error {\n\treturn e.blah\n}\n")
	})

	t.Run("conversions", func(t *testing.T) {
		assert.Contains(t, arts.Conversions, "// WrapAVariantWithJustACause wraps blah in an AVariantWithJustACause.\n")
		assert.Contains(t, arts.Conversions, "func WrapAVariantWithJustACause(blah error) ExampleError {\n\treturn AVariantWithJustACause{blah: blah}\n}\n")
		assert.NotContains(t, arts.Conversions, "WrapAVariantWithACause", "variants with more than one field never convert")
	})
}

func TestGenerate_Options(t *testing.T) {
	variants := mustParse(t, `Oops => "oops", Wrapped { #[from] err: error } => "wrapped"`)

	arts := Generate(variants, Options{VariantPrefix: "Err"})

	assert.Contains(t, arts.TypeShape, "type Error interface {", "default type name")
	assert.Contains(t, arts.TypeShape, "type ErrOops struct{}")
	assert.Contains(t, arts.Debug, `"Oops /* oops. */"`, "debug text uses the declared name")
	assert.Contains(t, arts.Conversions, "// WrapErrWrapped wraps err in an ErrWrapped.\n")
	assert.Contains(t, arts.Conversions, "func WrapErrWrapped(err error) Error {")
}

func TestGenerate_Shapes(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		artifact func(*Artifacts) string
		want     string
	}{
		{
			name:     "empty field block renders as a unit variant",
			src:      `Empty {} => "empty"`,
			artifact: func(a *Artifacts) string { return a.Debug },
			want:     "func (Empty) GoString() string {\n\treturn \"Empty /* empty. */\"\n}\n",
		},
		{
			name:     "trailing blanks of a long description stay in debug text",
			src:      `Padded => "a" ("b  ")`,
			artifact: func(a *Artifacts) string { return a.Debug },
			want:     "\treturn \"Padded /* a. b   */\"\n",
		},
		{
			name:     "percent in a constant display is escaped for Sprintf",
			src:      `Rate { r: int } => "100% full"`,
			artifact: func(a *Artifacts) string { return a.Debug },
			want:     `fmt.Sprintf("Rate { r: %+v } /* 100%% full. */", e.r)`,
		},
		{
			name:     "function literal parameter is not bound",
			src:      `Lit { x: int } => "a" ("{}", func(x int) int { return x }(1))`,
			artifact: func(a *Artifacts) string { return a.Display },
			want:     "func (Lit) Error() string {\n\treturn \"a. \" + fmt.Sprintf(\"%v\", func(x int) int { return x }(1))\n}\n",
		},
		{
			name:     "conversion comment article",
			src:      `Wrapped { #[from] err: error } => "wrapped"`,
			artifact: func(a *Artifacts) string { return a.Conversions },
			want:     "// WrapWrapped wraps err in a Wrapped.\n",
		},
		{
			name:     "interface cause is returned as is",
			src:      `Iface { #[from] err: error } => "iface"`,
			artifact: func(a *Artifacts) string { return a.Cause },
			want:     "func (e Iface) Unwrap() error {\n\treturn e.err\n}\n",
		},
		{
			name:     "struct tags",
			src:      `Tagged { #[json = "id"] #[yaml = "i"] id: int } => "tagged"`,
			artifact: func(a *Artifacts) string { return a.TypeShape },
			want:     "\tid int `json:\"id\" yaml:\"i\"`\n",
		},
		{
			name:     "tag containing a backquote",
			src:      "Tagged { #[doc = \"a`b\"] id: int } => \"tagged\"",
			artifact: func(a *Artifacts) string { return a.TypeShape },
			want:     "\tid int \"doc:\\\"a`b\\\"\"\n",
		},
		{
			name:     "field shadowing the receiver",
			src:      `Shadow { e: int } => "shadow" ("{}", e)`,
			artifact: func(a *Artifacts) string { return a.Display },
			want:     "func (e_ Shadow) Error() string {\n\te := e_.e\n",
		},
		{
			name:     "debug placeholder and escapes",
			src:      `Verbose { v: any } => "verbose" ("{{{:?}}} is 100%", v)`,
			artifact: func(a *Artifacts) string { return a.Display },
			want:     `fmt.Sprintf("{%#v} is 100%%", v)`,
		},
		{
			name:     "escaped literal folds to a constant",
			src:      `Braces => "braces" ("{{literal}}")`,
			artifact: func(a *Artifacts) string { return a.Display },
			want:     "\treturn \"braces. {literal}\"\n",
		},
		{
			name:     "arguments without field references",
			src:      `Const { n: int } => "const" ("{}", 42)`,
			artifact: func(a *Artifacts) string { return a.Display },
			want:     "func (Const) Error() string {\n\treturn \"const. \" + fmt.Sprintf(\"%v\", 42)\n}\n",
		},
		{
			name:     "from field among several",
			src:      `Mixed { a: int, #[from] b: error, c: int } => "mixed"`,
			artifact: func(a *Artifacts) string { return a.Cause },
			want:     "\treturn e.b\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arts := Generate(mustParse(t, tc.src), Options{TypeName: "E"})
			assert.Contains(t, tc.artifact(arts), tc.want)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	variants := mustParse(t, exampleDefinition)
	first := Generate(variants, Options{TypeName: "ExampleError"})
	second := Generate(variants, Options{TypeName: "ExampleError"})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Generate is not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerate_NoVariants(t *testing.T) {
	arts := Generate(nil, Options{TypeName: "Nothing"})
	assert.Contains(t, arts.TypeShape, "type Nothing interface {")
	assert.Empty(t, arts.Debug)
	assert.Empty(t, arts.Display)
	assert.Empty(t, arts.Description)
	assert.Empty(t, arts.Cause)
	assert.Empty(t, arts.Conversions)
}
