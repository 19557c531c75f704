package lexer

import "github.com/hashicorp/hcl/v2"

// Stream is a cursor over an already materialized token sequence. The last
// token is always EOF and the cursor never advances past it.
type Stream struct {
	filename string
	src      []byte
	tokens   []Token
	comments []hcl.Range
	cursor   int
}

// NewStream wraps tokens lexed from src. An EOF token is appended when the
// sequence does not already end with one.
func NewStream(filename string, src []byte, tokens []Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		end := hcl.Pos{Line: 1, Column: 1}
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Range.End
		}
		tokens = append(tokens, Token{
			Kind:  EOF,
			Range: hcl.Range{Filename: filename, Start: end, End: end},
		})
	}
	return &Stream{filename: filename, src: src, tokens: tokens}
}

// Peek returns the current token without consuming it.
func (s *Stream) Peek() Token {
	return s.tokens[s.cursor]
}

// PeekN returns the token n positions ahead of the cursor, or EOF.
func (s *Stream) PeekN(n int) Token {
	i := s.cursor + n
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	return s.tokens[i]
}

// Next consumes and returns the current token.
func (s *Stream) Next() Token {
	t := s.tokens[s.cursor]
	if t.Kind != EOF {
		s.cursor++
	}
	return t
}

// Filename is the name the source was lexed under.
func (s *Stream) Filename() string {
	return s.filename
}

// Source returns the raw bytes the tokens were lexed from.
func (s *Stream) Source() []byte {
	return s.src
}

// Len reports the number of tokens, excluding the final EOF.
func (s *Stream) Len() int {
	return len(s.tokens) - 1
}

// Text returns the source between the start of from and the end of to.
func (s *Stream) Text(from, to Token) string {
	return string(s.src[from.Range.Start.Byte:to.Range.End.Byte])
}

// Comments returns the ranges of the comments skipped while lexing.
func (s *Stream) Comments() []hcl.Range {
	return s.comments
}
