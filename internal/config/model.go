package config

import "fmt"

// Manifest is the unified representation of every generation job found in
// the loaded manifest files.
type Manifest struct {
	// Package is the default Go package for jobs that do not set one.
	Package string
	// Imports are added to every job.
	Imports []string
	Jobs    []*Job
}

// Job describes one generated file.
type Job struct {
	// TypeName names the generated error interface.
	TypeName      string
	Package       string
	VariantPrefix string
	Imports       []string

	// SourcePath is the .errdef file to compile. It is empty when the
	// definition is written inline.
	SourcePath string
	// Definition holds the inline definition text.
	Definition []byte
	// SourceName identifies the definition in positions and the generated
	// header.
	SourceName string

	OutputPath string
}

// Inline reports whether the definition is embedded in the manifest.
func (j *Job) Inline() bool {
	return j.SourcePath == ""
}

func (j *Job) String() string {
	return fmt.Sprintf("%s (%s -> %s)", j.TypeName, j.SourceName, j.OutputPath)
}
