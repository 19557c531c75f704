package config

import (
	"context"
	"io"
)

// Loader reads manifests from files or directories and translates them into
// the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Manifest, error)

	// Sources returns the raw contents of every file read so far, keyed by
	// file name, for rendering diagnostics.
	Sources() map[string][]byte
}

// Writer serializes a manifest in a concrete format.
type Writer interface {
	Write(w io.Writer, m *Manifest) error

	// Extension is the file extension manifests in this format use.
	Extension() string
}
