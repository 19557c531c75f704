package lexer

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	Ident
	String
	FatArrow
	Hash
	LBrace
	RBrace
	LParen
	RParen
	LBrack
	RBrack
	Comma
	Colon
	Assign
	// Other is any remaining Go token. Types and expressions are made of
	// them and are only ever sliced back out of the source.
	Other
)

var kindNames = [...]string{
	EOF:      "end of input",
	Ident:    "identifier",
	String:   "string literal",
	FatArrow: "=>",
	Hash:     "#",
	LBrace:   "{",
	RBrace:   "}",
	LParen:   "(",
	RParen:   ")",
	LBrack:   "[",
	RBrack:   "]",
	Comma:    ",",
	Colon:    ":",
	Assign:   "=",
	Other:    "token",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical token and the source range it covers.
type Token struct {
	Kind  Kind
	Text  string
	Range hcl.Range
}

// Describe names the token for diagnostics, e.g. `"=>"` or `end of input`.
func (t Token) Describe() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%q", t.Text)
}
