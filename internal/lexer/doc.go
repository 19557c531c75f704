// Package lexer turns error definition source into a token Stream.
//
// The notation borrows Go's lexical grammar, because field types and format
// arguments are Go source copied into the generated file. Tokens come from
// go/scanner with two adjustments: automatically inserted semicolons are
// dropped, and the pairs `=` `>` and the illegal `#` character are surfaced
// as the FatArrow and Hash tokens the definition grammar needs.
package lexer
