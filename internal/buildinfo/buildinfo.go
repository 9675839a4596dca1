// Package buildinfo holds values stamped at link time, e.g.
//
//	go build -ldflags "-X github.com/aalvaropc/fwkit/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("fwkit %s (commit=%s, date=%s)", Version, Commit, Date)
}

// Fields returns the build values keyed for structured output.
func Fields() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
	}
}
