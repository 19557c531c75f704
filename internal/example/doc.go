// Package example holds the error type generated from example.errdef. It
// documents what errdefgen emits and keeps the generated code compiling.
package example

//go:generate go run ../../cmd/errdefgen -type ExampleError -package example -imports io/fs example.errdef
