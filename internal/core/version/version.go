// Package version reports what build of huddle-api is running
package version

import "runtime/debug"

// BuildInfo is served by /meta/version
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go,omitempty"`
}

// set with -ldflags "-X huddle/internal/core/version.version=v0.1.0 ..."
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Info merges the linker stamped values with the vcs settings the go tool embeds
func Info() BuildInfo {
	info, _ := debug.ReadBuildInfo()
	return merge(BuildInfo{Service: "huddle-api", Version: version, Commit: commit, Date: date}, info)
}

// merge fills blanks in bi from info, linker values win
func merge(bi BuildInfo, info *debug.BuildInfo) BuildInfo {
	if info != nil {
		bi.Go = info.GoVersion
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "":
				bi.Commit = s.Value
			case s.Key == "vcs.time" && bi.Date == "":
				bi.Date = s.Value
			}
		}
	}
	if bi.Commit == "" {
		bi.Commit = "none"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	return bi
}
