package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, overridable with
// -ldflags "-X github.com/heartmarshall/langy-backend/internal/app.Version=1.0.0".
// Commit falls back to the VCS revision embedded by the Go toolchain.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

// BuildVersion returns the version line logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit(), BuildTime)
}

func commit() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
