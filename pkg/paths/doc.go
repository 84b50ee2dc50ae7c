// Package paths resolves raw user input into canonical filesystem paths
// and validates that a pair of resolved paths can be exchanged safely.
//
// Resolution canonicalizes every symlink, "." and ".." component, so two
// resolved paths are the same entry exactly when their Path strings are
// equal. All safety checks (identity, containment) operate on canonical
// paths only; raw input strings are never compared.
package paths
