//go:build !movedebug

package format

const debugChecks = false
