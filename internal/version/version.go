// Package version exposes the sigscan build version.
package version

// version is overridden at build time via
// -ldflags "-X github.com/falcion/sigscan/internal/version.version=...".
var version = "0.1.0"

// GetVersion returns the version baked into the binary, without a "v"
// prefix.
func GetVersion() string {
	return version
}
