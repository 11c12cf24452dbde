//go:build debugassert

package assert

// Enabled is true in debugassert builds.
const Enabled = true
