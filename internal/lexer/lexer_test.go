package lexer

import (
	"errors"
	"testing"

	"github.com/specialistvlad/errdefgen/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(s *Stream) []Kind {
	var out []Kind
	for {
		t := s.Next()
		out = append(out, t.Kind)
		if t.Kind == EOF {
			return out
		}
	}
}

func TestLex_Kinds(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected []Kind
	}{
		{
			name:     "unit variant",
			src:      `AVariant => "Unit-like variant",`,
			expected: []Kind{Ident, FatArrow, String, Comma, EOF},
		},
		{
			name:     "from marked field",
			src:      `#[from] cause: *fs.PathError`,
			expected: []Kind{Hash, LBrack, Ident, RBrack, Ident, Colon, Other, Ident, Other, Ident, EOF},
		},
		{
			name:     "tag attribute",
			src:      `#[json = "x"]`,
			expected: []Kind{Hash, LBrack, Ident, Assign, String, RBrack, EOF},
		},
		{
			name: "automatic semicolons are dropped",
			src: `A {
	flim: uint32
} => "x"
`,
			expected: []Kind{Ident, LBrace, Ident, Colon, Ident, RBrace, FatArrow, String, EOF},
		},
		{
			name:     "spaced arrow is not an arrow",
			src:      `A = > "x"`,
			expected: []Kind{Ident, Assign, Other, String, EOF},
		},
		{
			name:     "long description",
			src:      `("flim is {}", flim)`,
			expected: []Kind{LParen, String, Comma, Ident, RParen, EOF},
		},
		{
			name:     "empty input",
			src:      "",
			expected: []Kind{EOF},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Lex("test.errdef", []byte(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kinds(s))
		})
	}
}

func TestLex_Positions(t *testing.T) {
	src := "A => \"a\",\n  B => \"b\"\n"
	s, err := Lex("pos.errdef", []byte(src))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		s.Next()
	}
	b := s.Next()
	assert.Equal(t, "B", b.Text)
	assert.Equal(t, "pos.errdef", b.Range.Filename)
	assert.Equal(t, 2, b.Range.Start.Line)
	assert.Equal(t, 3, b.Range.Start.Column)
	assert.Equal(t, 12, b.Range.Start.Byte)

	arrow := s.Next()
	assert.Equal(t, FatArrow, arrow.Kind)
	assert.Equal(t, "=>", arrow.Text)
	assert.Equal(t, 2, arrow.Range.End.Byte-arrow.Range.Start.Byte)
}

func TestLex_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		contains string
	}{
		{name: "unterminated string", src: `A => "oops`, contains: "not terminated"},
		{name: "illegal character", src: `A => $`, contains: "illegal character"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Lex("bad.errdef", []byte(tc.src))
			require.Error(t, err)
			assert.Nil(t, s)

			var failure *diag.Failure
			require.True(t, errors.As(err, &failure))
			assert.Contains(t, failure.Summary, tc.contains)
			assert.Equal(t, "bad.errdef", failure.Subject.Filename)
		})
	}
}

func TestStream_Cursor(t *testing.T) {
	s, err := Lex("c.errdef", []byte(`A { x: map[string]int }`))
	require.NoError(t, err)
	assert.Equal(t, 10, s.Len())

	assert.Equal(t, Ident, s.Peek().Kind)
	assert.Equal(t, LBrace, s.PeekN(1).Kind)
	assert.Equal(t, EOF, s.PeekN(100).Kind)

	for i := 0; i < 4; i++ {
		s.Next()
	}
	first := s.Next()
	var last Token
	for s.Peek().Kind != RBrace {
		last = s.Next()
	}
	assert.Equal(t, "map[string]int", s.Text(first, last))

	s.Next()
	assert.Equal(t, EOF, s.Next().Kind)
	assert.Equal(t, EOF, s.Next().Kind, "the cursor never moves past EOF")
}

func TestLex_Comments(t *testing.T) {
	src := "// header\nA => \"a\", /* inline */ B => \"b\" // trailing\n"

	s, err := Lex("c.errdef", []byte(src))
	require.NoError(t, err)

	comments := s.Comments()
	require.Len(t, comments, 3)
	assert.Equal(t, "// header", string(src[comments[0].Start.Byte:comments[0].End.Byte]))
	assert.Equal(t, 2, comments[1].Start.Line)
	assert.Equal(t, "/* inline */", string(src[comments[1].Start.Byte:comments[1].End.Byte]))

	var kinds []Kind
	for s.Peek().Kind != EOF {
		kinds = append(kinds, s.Next().Kind)
	}
	assert.Equal(t, []Kind{Ident, FatArrow, String, Comma, Ident, FatArrow, String}, kinds)
}
