//go:build !debugassert

package assert

// Enabled is false in release builds.
const Enabled = false
