package errdef

import (
	"errors"
	"strconv"

	"github.com/agext/levenshtein"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/errdefgen/internal/diag"
	"github.com/specialistvlad/errdefgen/internal/fmtstr"
	"github.com/specialistvlad/errdefgen/internal/goexpr"
	"github.com/specialistvlad/errdefgen/internal/lexer"
)

const fromAttr = "from"

// flagAttrs are the attributes allowed without a value.
var flagAttrs = []string{fromAttr}

// ExprParser parses exactly one format argument starting at the stream's
// current token and leaves the cursor on the token that follows it.
type ExprParser func(s *lexer.Stream) (goexpr.Expr, error)

// Option configures a parse.
type Option func(*parser)

// WithExprParser replaces the Go expression parser used for format
// arguments.
func WithExprParser(fn ExprParser) Option {
	return func(p *parser) {
		p.parseExpr = fn
	}
}

func parseGoExpr(s *lexer.Stream) (goexpr.Expr, error) {
	return goexpr.Parse(s, lexer.Comma, lexer.RParen)
}

type parser struct {
	s         *lexer.Stream
	parseExpr ExprParser
}

// attrAt is an attribute together with the source it was read from.
type attrAt struct {
	Attribute
	rng hcl.Range
}

// Parse reads variants until the end of the stream. On failure it returns
// nil and the first *diag.Failure encountered.
func Parse(s *lexer.Stream, opts ...Option) ([]VariantSpec, error) {
	p := &parser{s: s, parseExpr: parseGoExpr}
	for _, opt := range opts {
		opt(p)
	}

	variants := make([]VariantSpec, 0)
	for p.s.Peek().Kind != lexer.EOF {
		v, err := p.parseVariant()
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)

		switch t := p.s.Next(); t.Kind {
		case lexer.Comma, lexer.EOF:
		default:
			return nil, p.fail(t, "expected comma")
		}
	}
	return variants, nil
}

func (p *parser) fail(t lexer.Token, msg string) *diag.Failure {
	return diag.Errorf(t.Range, "%s", msg).WithDetail("Found %s.", t.Describe())
}

func (p *parser) parseVariant() (VariantSpec, error) {
	name := p.s.Next()
	if name.Kind != lexer.Ident {
		return VariantSpec{}, p.fail(name, "expected variant name")
	}
	v := VariantSpec{Name: name.Text, FromIndex: -1}

	switch t := p.s.Next(); t.Kind {
	case lexer.FatArrow:
		v.Kind = Unit
	case lexer.LBrace:
		fields, from, err := p.parseFields()
		if err != nil {
			return VariantSpec{}, err
		}
		// An empty block declares a unit variant.
		if len(fields) > 0 {
			v.Kind, v.Fields, v.FromIndex = Struct, fields, from
		} else {
			v.Kind = Unit
		}
		if t := p.s.Next(); t.Kind != lexer.FatArrow {
			return VariantSpec{}, p.fail(t, "expected =>")
		}
	default:
		return VariantSpec{}, p.fail(t, "expected => or a field block")
	}

	short, _, err := p.parseString("expected a string literal")
	if err != nil {
		return VariantSpec{}, err
	}
	v.ShortDescription = short

	if p.s.Peek().Kind == lexer.LParen {
		p.s.Next()
		long, err := p.parseLongDescription()
		if err != nil {
			return VariantSpec{}, err
		}
		v.LongDescription = long
	}

	v.Doc = short + "."
	return v, nil
}

// parseFields reads field declarations up to and including the closing
// brace, returning the fields and the index of the one marked #[from].
func (p *parser) parseFields() ([]FieldSpec, int, error) {
	fields := make([]FieldSpec, 0)
	fromIndex := -1

	for {
		if p.s.Peek().Kind == lexer.RBrace {
			p.s.Next()
			return fields, fromIndex, nil
		}

		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, -1, err
		}
		kept, marker, err := resolveAttributes(attrs)
		if err != nil {
			return nil, -1, err
		}
		if marker != nil {
			if fromIndex >= 0 {
				return nil, -1, diag.Errorf(*marker, "multiple fields marked #[from]")
			}
			fromIndex = len(fields)
		}

		field, err := p.parseField(kept)
		if err != nil {
			return nil, -1, err
		}
		fields = append(fields, field)

		switch t := p.s.Peek(); t.Kind {
		case lexer.Comma:
			p.s.Next()
		case lexer.RBrace:
		default:
			return nil, -1, p.fail(t, "expected , or } after field")
		}
	}
}

func (p *parser) parseAttributes() ([]attrAt, error) {
	var attrs []attrAt
	for p.s.Peek().Kind == lexer.Hash {
		hash := p.s.Next()
		if t := p.s.Next(); t.Kind != lexer.LBrack {
			return nil, p.fail(t, "expected [ after #")
		}
		key := p.s.Next()
		if key.Kind != lexer.Ident {
			return nil, p.fail(key, "expected attribute name")
		}

		a := Attribute{Key: key.Text}
		if p.s.Peek().Kind == lexer.Assign {
			p.s.Next()
			val, _, err := p.parseString("expected a string literal attribute value")
			if err != nil {
				return nil, err
			}
			a.Value, a.HasValue = val, true
		}

		end := p.s.Next()
		if end.Kind != lexer.RBrack {
			return nil, p.fail(end, "expected ]")
		}
		rng := hash.Range
		rng.End = end.Range.End
		attrs = append(attrs, attrAt{Attribute: a, rng: rng})
	}
	return attrs, nil
}

// resolveAttributes scans a field's attributes once. It returns the list
// with the from marker filtered out and the marker's range when present.
func resolveAttributes(attrs []attrAt) ([]Attribute, *hcl.Range, error) {
	var kept []Attribute
	var marker *hcl.Range
	tags := make(map[string]struct{})

	for _, a := range attrs {
		rng := a.rng
		switch {
		case a.Key == fromAttr && a.HasValue:
			return nil, nil, diag.Errorf(rng, "attribute #[from] takes no value")
		case a.Key == fromAttr:
			if marker != nil {
				return nil, nil, diag.Errorf(rng, "field marked #[from] twice")
			}
			marker = &rng
		case !a.HasValue:
			if s := suggest(a.Key, flagAttrs); s != "" {
				return nil, nil, diag.Errorf(rng, "unknown field attribute %q; did you mean %q?", a.Key, s)
			}
			return nil, nil, diag.Errorf(rng, "unknown field attribute %q", a.Key)
		default:
			if _, dup := tags[a.Key]; dup {
				return nil, nil, diag.Errorf(rng, "duplicate tag key %q", a.Key)
			}
			tags[a.Key] = struct{}{}
			kept = append(kept, a.Attribute)
		}
	}
	return kept, marker, nil
}

func suggest(given string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := levenshtein.Distance(given, c, nil); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (p *parser) parseField(attrs []Attribute) (FieldSpec, error) {
	name := p.s.Peek()
	if name.Kind != lexer.Ident {
		return FieldSpec{}, p.fail(name, "expected struct field")
	}
	if p.s.PeekN(1).Kind != lexer.Colon {
		return FieldSpec{}, p.fail(name, "expected a named field")
	}
	p.s.Next()
	p.s.Next()

	typ, err := goexpr.ParseType(p.s, lexer.Comma, lexer.RBrace)
	if err != nil {
		return FieldSpec{}, err
	}
	return FieldSpec{Name: name.Text, Type: typ, Attrs: attrs}, nil
}

// parseLongDescription reads `"template", args...)` after the opening
// parenthesis.
func (p *parser) parseLongDescription() (*LongDescription, error) {
	text, tmplTok, err := p.parseString("expected a format string")
	if err != nil {
		return nil, err
	}
	tmpl, err := fmtstr.Parse(text)
	if err != nil {
		return nil, diag.Errorf(tmplTok.Range, "invalid format string: %v", err)
	}

	var args []goexpr.Expr
	for {
		t := p.s.Next()
		if t.Kind == lexer.RParen {
			break
		}
		if t.Kind != lexer.Comma {
			return nil, p.fail(t, "expected comma")
		}

		at := p.s.Peek()
		arg, err := p.parseExpr(p.s)
		if err != nil {
			var failure *diag.Failure
			if errors.As(err, &failure) {
				return nil, err
			}
			return nil, diag.Errorf(at.Range, "%v", err)
		}
		args = append(args, arg)
	}

	if tmpl.NumArgs() != len(args) {
		return nil, diag.Errorf(tmplTok.Range, "format string expects %d arguments, got %d", tmpl.NumArgs(), len(args))
	}
	return &LongDescription{Template: text, Args: args}, nil
}

func (p *parser) parseString(msg string) (string, lexer.Token, error) {
	t := p.s.Next()
	if t.Kind != lexer.String {
		return "", t, p.fail(t, msg)
	}
	s, err := strconv.Unquote(t.Text)
	if err != nil {
		return "", t, diag.Errorf(t.Range, "invalid string literal %s", t.Text)
	}
	return s, t, nil
}
