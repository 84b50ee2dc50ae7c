// Package filesystem provides filesystem implementations for swap.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem used by the CLI.
package filesystem
