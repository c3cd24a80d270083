package version

import "fmt"

// Set at build time with -ldflags "-X raw_httpd/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("raw_httpd %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}
