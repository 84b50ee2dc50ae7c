// Package engine computes and executes swap plans.
//
// No filesystem primitive exchanges two arbitrary paths atomically, so the
// engine performs a three-rename maneuver: park the first item under a
// temporary name in its own directory, move the second item to its target,
// then move the parked item to its target. Each rename is a single atomic
// directory-entry update; the sequence as a whole is not atomic, and the
// engine's job on a mid-sequence failure is to rename its way back to the
// original layout, or to report exactly where the parked data ended up.
package engine
