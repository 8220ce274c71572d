// Package build holds build-time information.
package build

// These values are overwritten by linker flags, e.g.
// -ldflags "-X github.com/FloatyJellyfish/mod-updater/internal/build.Version=v1.2.0".
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
