// Package build holds version information set at link time.
package build

import "fmt"

var (
	ProjectVersion = "unknown"
	GitRef         = "unknown"
	BuildDate      = "unknown"
	LongVersion    = fmt.Sprintf("%s (%s, %s)", ProjectVersion, GitRef, BuildDate)
)
