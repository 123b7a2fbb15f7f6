//go:build movedebug

package format

// debugChecks enables the transitive invariant assertions in the accessor.
// Build with -tags movedebug to turn them on.
const debugChecks = true
