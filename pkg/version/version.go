// Package version exposes the build-time version of depfetch.
package version

// version is set at build time via -ldflags "-X .../pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Injected by the build

// GetVersion returns the version string baked into the binary.
func GetVersion() string {
	return version
}
