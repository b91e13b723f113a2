// Package version reports the build version of rxkit binaries.
//
// Version and Commit are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/rxkit/version.Version=1.0.0" ./cmd/rxdemo
//
// Missing values are filled from the module's VCS build settings.
package version
