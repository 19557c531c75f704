// Package goexpr parses the Go expressions and types embedded in an error
// definition. Both are opaque to the compiler: they are validated for syntax,
// normalized with go/printer and copied into the generated file verbatim.
package goexpr

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"slices"

	"github.com/specialistvlad/errdefgen/internal/diag"
	"github.com/specialistvlad/errdefgen/internal/lexer"
)

// Expr is a parsed expression: its normalized source and the identifiers
// it references, in order of first use.
type Expr struct {
	Source string
	Refs   []string
}

// References reports whether the expression mentions name as a free
// identifier.
func (e Expr) References(name string) bool {
	return slices.Contains(e.Refs, name)
}

// Parse consumes one expression from s. The expression ends before the first
// token, outside any brackets, whose kind is in stops.
func Parse(s *lexer.Stream, stops ...lexer.Kind) (Expr, error) {
	node, text, err := parseSpan(s, "expression", stops)
	if err != nil {
		return Expr{}, err
	}
	return Expr{Source: text, Refs: References(node)}, nil
}

// ParseType consumes one field type from s, with the same stop rules as
// Parse. The type is only checked for syntax.
func ParseType(s *lexer.Stream, stops ...lexer.Kind) (string, error) {
	_, text, err := parseSpan(s, "field type", stops)
	return text, err
}

func parseSpan(s *lexer.Stream, what string, stops []lexer.Kind) (ast.Expr, string, error) {
	first := s.Peek()
	var last lexer.Token
	depth, n := 0, 0

	for {
		t := s.Peek()
		if t.Kind == lexer.EOF {
			if depth > 0 {
				return nil, "", diag.Errorf(t.Range, "unexpected end of input in %s", what)
			}
			break
		}
		if depth == 0 && slices.Contains(stops, t.Kind) {
			break
		}
		switch t.Kind {
		case lexer.LBrace, lexer.LParen, lexer.LBrack:
			depth++
		case lexer.RBrace, lexer.RParen, lexer.RBrack:
			if depth == 0 {
				return nil, "", diag.Errorf(t.Range, "unexpected %s in %s", t.Describe(), what)
			}
			depth--
		}
		last = s.Next()
		n++
	}

	if n == 0 {
		return nil, "", diag.Errorf(first.Range, "expected %s, found %s", what, first.Describe())
	}

	subject := first.Range
	subject.End = last.Range.End
	raw := s.Text(first, last)

	fset := token.NewFileSet()
	node, err := parser.ParseExprFrom(fset, "", raw, 0)
	if err != nil {
		return nil, "", diag.Errorf(subject, "invalid %s %q", what, raw).WithDetail("%v", err)
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, node); err != nil {
		return nil, "", diag.Errorf(subject, "invalid %s %q", what, raw).WithDetail("%v", err)
	}
	return node, buf.String(), nil
}

// References lists the free identifiers an expression uses, skipping
// selector names, struct literal keys, branch labels and names declared
// inside function literals, none of which refer to outer variables.
func References(node ast.Node) []string {
	var refs []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			refs = append(refs, name)
		}
	}

	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.Ident:
			if x.Name != "_" {
				add(x.Name)
			}
			return false
		case *ast.SelectorExpr:
			ast.Inspect(x.X, visit)
			return false
		case *ast.CompositeLit:
			if x.Type != nil {
				ast.Inspect(x.Type, visit)
			}
			_, isMap := x.Type.(*ast.MapType)
			for _, elt := range x.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					ast.Inspect(elt, visit)
					continue
				}
				if _, isIdent := kv.Key.(*ast.Ident); isMap || !isIdent {
					ast.Inspect(kv.Key, visit)
				}
				ast.Inspect(kv.Value, visit)
			}
			return false
		case *ast.FuncLit:
			local := declared(x)
			for _, part := range []ast.Node{x.Type, x.Body} {
				for _, name := range References(part) {
					if _, ok := local[name]; !ok {
						add(name)
					}
				}
			}
			return false
		case *ast.BranchStmt:
			return false
		case *ast.LabeledStmt:
			ast.Inspect(x.Stmt, visit)
			return false
		}
		return true
	}

	ast.Inspect(node, visit)
	return refs
}

// declared collects the names a function literal binds: its parameters and
// results plus everything declared in its body outside nested literals.
func declared(fn *ast.FuncLit) map[string]struct{} {
	names := make(map[string]struct{})
	addIdents := func(exprs ...ast.Expr) {
		for _, e := range exprs {
			if id, ok := e.(*ast.Ident); ok {
				names[id.Name] = struct{}{}
			}
		}
	}

	for _, list := range []*ast.FieldList{fn.Type.Params, fn.Type.Results} {
		if list == nil {
			continue
		}
		for _, field := range list.List {
			for _, id := range field.Names {
				names[id.Name] = struct{}{}
			}
		}
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.AssignStmt:
			if x.Tok == token.DEFINE {
				addIdents(x.Lhs...)
			}
		case *ast.RangeStmt:
			if x.Tok == token.DEFINE {
				addIdents(x.Key, x.Value)
			}
		case *ast.ValueSpec:
			for _, id := range x.Names {
				names[id.Name] = struct{}{}
			}
		case *ast.TypeSpec:
			names[x.Name.Name] = struct{}{}
		}
		return true
	})
	return names
}
