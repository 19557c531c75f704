package lexer

import (
	"go/scanner"
	"go/token"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/errdefgen/internal/diag"
)

var kindOf = map[token.Token]Kind{
	token.IDENT:  Ident,
	token.STRING: String,
	token.LBRACE: LBrace,
	token.RBRACE: RBrace,
	token.LPAREN: LParen,
	token.RPAREN: RParen,
	token.LBRACK: LBrack,
	token.RBRACK: RBrack,
	token.COMMA:  Comma,
	token.COLON:  Colon,
	token.ASSIGN: Assign,
}

// Lex tokenizes src. Comments are kept aside and never appear as tokens.
// The first lexical error aborts tokenization and is returned as a
// *diag.Failure.
func Lex(filename string, src []byte) (*Stream, error) {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))
	positions := positioner{filename: filename, file: file}

	var failure *diag.Failure
	handler := func(pos token.Position, msg string) {
		// `#` introduces field attributes; go/scanner flags it as illegal.
		if pos.Offset < len(src) && src[pos.Offset] == '#' {
			return
		}
		if failure == nil {
			end := pos.Offset + 1
			if end > len(src) {
				end = len(src)
			}
			failure = diag.Errorf(positions.span(pos.Offset, end), "%s", msg)
		}
	}

	var s scanner.Scanner
	s.Init(file, src, handler, scanner.ScanComments)

	var tokens []Token
	var comments []hcl.Range
	for {
		pos, tok, lit := s.Scan()
		if tok == token.SEMICOLON && lit != ";" {
			continue
		}
		if tok == token.COMMENT {
			start := file.Offset(pos)
			comments = append(comments, positions.span(start, start+len(lit)))
			continue
		}

		start := file.Offset(pos)
		text := lit
		if text == "" {
			text = tok.String()
		}
		if tok == token.EOF {
			text = ""
		}

		kind, ok := kindOf[tok]
		switch {
		case tok == token.EOF:
			kind = EOF
		case tok == token.ILLEGAL && lit == "#":
			kind = Hash
		case !ok:
			kind = Other
		}

		// `=` directly followed by `>` is the arrow separating a variant
		// head from its descriptions.
		if tok == token.GTR && len(tokens) > 0 {
			prev := &tokens[len(tokens)-1]
			if prev.Kind == Assign && prev.Range.End.Byte == start {
				prev.Kind = FatArrow
				prev.Text = "=>"
				prev.Range = positions.span(prev.Range.Start.Byte, start+1)
				continue
			}
		}

		tokens = append(tokens, Token{
			Kind:  kind,
			Text:  text,
			Range: positions.span(start, start+len(text)),
		})
		if tok == token.EOF {
			break
		}
	}

	if failure != nil {
		return nil, failure
	}
	stream := NewStream(filename, src, tokens)
	stream.comments = comments
	return stream, nil
}

type positioner struct {
	filename string
	file     *token.File
}

func (p positioner) pos(offset int) hcl.Pos {
	position := p.file.Position(p.file.Pos(offset))
	return hcl.Pos{Line: position.Line, Column: position.Column, Byte: offset}
}

func (p positioner) span(start, end int) hcl.Range {
	return hcl.Range{
		Filename: p.filename,
		Start:    p.pos(start),
		End:      p.pos(end),
	}
}
