// Package version reports the build version of unic.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/unic/version.Version=1.0.0"
package version
