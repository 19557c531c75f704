// Package hcl implements config.Loader and config.Writer for HCL manifests.
//
// A manifest declares top-level defaults and one `error` block per
// generated file:
//
//	package = "example"
//	imports = ["io/fs"]
//
//	error "ExampleError" {
//	  source = "example.errdef"
//	  output = "${snake(name)}_gen.go"
//	}
//
// Relative paths are resolved against the directory of the manifest that
// declares them.
package hcl
