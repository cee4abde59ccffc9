// Package pkg holds project metadata shared across the module.
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the shortcode module embedded at
// build time. It is printed by the CLI when users request version info.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across
	// the project. For example, it appears in help text.
	Name = "shortcode"
	// Description is a short, human-readable summary of the project used
	// in help output and documentation.
	Description = "Embedded directive expansion for content pipelines"
)
