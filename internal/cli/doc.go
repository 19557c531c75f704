// Package cli parses command-line arguments, validates user input and
// defines the exit codes of the errdefgen command. It translates flags into
// an app.Config.
package cli
