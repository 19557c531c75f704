// Package app contains the application lifecycle of errdefgen: it resolves
// what to generate from its Config, drives the compiler for each job and
// writes the results, decoupled from the command-line entrypoint.
package app
