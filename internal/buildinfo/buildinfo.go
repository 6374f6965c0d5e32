// Package buildinfo holds version information set at build time:
//
//	go build -ldflags "-X github.com/vdobler/subplot/internal/buildinfo.Version=v0.3.0 \
//	    -X github.com/vdobler/subplot/internal/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/vdobler/subplot/internal/buildinfo.Date=$(date -u +%Y-%m-%d)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
