package commands

import (
	"fmt"

	"github.com/shubham-dpworld/initializr-ui/internal/build"
)

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, date: %s)", build.Version, build.Commit, build.Date)
}
