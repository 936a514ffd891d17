// Package version reports which anketa build is running. The values are
// stamped at build time:
//
//	go build -ldflags "-X github.com/example/anketa/internal/version.Version=v1.2.0 \
//	  -X github.com/example/anketa/internal/version.Commit=$(git rev-parse HEAD)"
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String is shown by `anketa --version`.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

// UserAgent identifies the client to the questionnaire API.
func UserAgent() string {
	return "anketa/" + Version
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
