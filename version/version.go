package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

const develVersion = "(devel)"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns version information. Values set through -ldflags win over
// what the toolchain stamped into the binary; a binary built by
// `go install module@version` reports that module version.
func Get() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		info.Version = buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = setting.Value
			}
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	return info
}

// Short returns the version, suffixed with the commit when known.
func (i *Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	if i.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", i.Version, i.GitCommit)
	}
	return fmt.Sprintf("%s-%s", i.Version, i.GitCommit)
}

// String returns the line printed by --version, e.g.
// "1.2.0-abc1234 (built 2024-01-15T10:30:00Z, go1.26.0 linux/amd64)".
func (i *Info) String() string {
	details := make([]string, 0, 2)
	if i.BuildTime != "" {
		details = append(details, "built "+i.BuildTime)
	}
	details = append(details, i.GoVersion+" "+i.Platform)
	return fmt.Sprintf("%s (%s)", i.Short(), strings.Join(details, ", "))
}
