// Package assert implements the debug-assertion policy. Contract checks on
// hot paths (direction ranges, square ranges, init order) compile to
// nothing unless the binary is built with -tags debugassert.
package assert

import "fmt"

// True panics with msg if cond is false and assertions are enabled.
func True(cond bool, msg string) {
	if Enabled && !cond {
		panic("assertion failed: " + msg)
	}
}

// Truef is True with a formatted message. The message is only built when
// the assertion fails.
func Truef(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("assertion failed: " + fmt.Sprintf(format, args...))
	}
}
