//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// version is the semantic version of the subst module embedded at build time.
//
//go:embed VERSION
var version string

// Version returns the embedded semantic version, trimmed of whitespace.
// It is printed by the CLI when users invoke the --version flag.
func Version() string {
	return strings.TrimSpace(version)
}

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "subst"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Configuration placeholder resolver"
)
