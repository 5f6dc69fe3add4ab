package version

import "fmt"

// set via -ldflags at build time
var (
	Version    = "dev"
	CommitHash = "n/a"
	BuildTime  = "n/a"
)

func BuildVersion() string {
	return fmt.Sprintf("b64pack %s (commit %s, built %s)", Version, CommitHash, BuildTime)
}
