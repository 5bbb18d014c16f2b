// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/livp123/advent/internal/version.Version=v1.2.3".
package version

// Version is the advent build version.
// Version 是 advent 的构建版本。
var Version = "dev"
