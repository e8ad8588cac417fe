// Package build carries build-time metadata.
package build

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/SummerStorm/jurigged/internal/build.Version=...".
var Version = "dev"
