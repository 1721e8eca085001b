package cli

import (
	"runtime/debug"
	"strings"
)

const devVersion = "dev"

var readBuildInfo = debug.ReadBuildInfo

// resolvedVersion prefers an injected version, then the module version from
// build info, then the VCS revision.
func resolvedVersion(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && trimmed != devVersion {
		return trimmed
	}

	if info, ok := readBuildInfo(); ok && info != nil {
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return v
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}

	return devVersion
}
