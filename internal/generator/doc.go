// Package generator derives Go source from a validated list of error
// variants.
//
// Generate is pure: the same variants and options always produce the same
// Artifacts. Each artifact is an independent fragment of Go declarations:
//
//   - TypeShape: the sealed interface and one struct per variant
//   - Debug: a GoString method per variant
//   - Display: an Error method per variant
//   - Description: a Description method per variant
//   - Cause: an Unwrap method per variant
//   - Conversions: Wrap constructors for single-field variants marked #[from]
//
// Artifacts.Source splices the fragments into a complete, gofmt-formatted
// file.
package generator
