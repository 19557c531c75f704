/*
Package errdef parses error definitions into an ordered list of VariantSpec.

A definition is a sequence of variants:

	NotFound => "Resource not found",
	Timeout {
		after: time.Duration,
	} => "Operation timed out" ("gave up after {}", after),
	Io {
		#[from] cause: error,
	} => "I/O failure",

Validation is interleaved with parsing and fails fast: the first violated
rule aborts the whole definition with a single *diag.Failure, and no
variants are returned.
*/
package errdef
