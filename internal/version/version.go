package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/ddsbatch/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/ddsbatch/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/ddsbatch/internal/version.Date={{.Date}}
)

// String returns the multi-line version banner
func String(program string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", program, Version, Commit, Date)
}
