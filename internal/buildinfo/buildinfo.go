package buildinfo

import "fmt"

// These vars are set by -ldflags at build time.
var (
	Version   = "dev"
	GitCommit string
	BuildDate string
)

func String() string {
	return fmt.Sprintf("%s %s %s", Version, GitCommit, BuildDate)
}

// UserAgent identifies the CLI to the Trieve API.
func UserAgent() string {
	return fmt.Sprintf("trieve-cli/%s", Version)
}
