// Package config defines the format-agnostic generation manifest: which
// error definitions to compile, under which names, and where to write the
// results.
//
// Concrete manifest formats implement Loader in separate packages; the HCL
// one lives in internal/hcl.
package config
