// Package version provides build version information embedding for
// flagkit.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/flagkit/version.Version=1.0.0"
package version
