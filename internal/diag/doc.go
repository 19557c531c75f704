// Package diag defines the single fatal failure raised while compiling an
// error definition and the helpers that report it through hcl.Diagnostics.
//
// Every violated rule (a wrong token, a duplicated from marker, an unnamed
// field, a non-literal description) surfaces as a *Failure carrying a message
// and the source range it applies to. There is no recovery: the first
// failure aborts the definition.
package diag
