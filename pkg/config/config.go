// Package config loads swap's configuration: built-in defaults, an
// optional user config file from the XDG config directory, and SWAP_*
// environment overrides, in that precedence order.
package config

import (
	"path/filepath"

	"github.com/arthur-debert/swap/pkg/types"
)

// Config holds swap's runtime settings.
type Config struct {
	// ProtectedPaths are canonical paths swap refuses to move, as either
	// operand. The filesystem root is always refused regardless of this
	// list.
	ProtectedPaths []string `koanf:"protected_paths" toml:"protected_paths"`

	// TempAttempts bounds the temporary-name collision retry loop.
	TempAttempts int `koanf:"temp_attempts" toml:"temp_attempts"`
}

// IsProtected reports whether the resolved path is on the protected list.
// Comparison is by canonical path, so aliases of a protected path are
// caught too.
func (c *Config) IsProtected(resolved *types.ResolvedPath) bool {
	for _, p := range c.ProtectedPaths {
		if filepath.Clean(p) == resolved.Path {
			return true
		}
	}
	return false
}
