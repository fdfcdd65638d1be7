// Package cmd holds build metadata for the cm binary. Release builds set it
// with:
//
//	go build -ldflags "-X github.com/richhaase/context-monkey/cmd.Version=v1.2.0 \
//	  -X github.com/richhaase/context-monkey/cmd.Commit=$(git rev-parse --short HEAD)" ./cmd/cm
package cmd

var (
	// Version is "dev" for local builds.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
