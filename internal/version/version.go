// Package version records the build version stamped into release binaries.
package version

// Version is the envy-tui release version. Release builds override it via
// -ldflags "-X github.com/tassiovirginio/envy-tui/internal/version.Version=...".
var Version = "0.3.1"
