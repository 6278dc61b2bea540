package version

import (
	"runtime"
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := Get()
	if info == nil {
		t.Fatal("expected non-nil Info")
	}
	if info.Version == "" {
		t.Error("version should never be empty")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected %q, got %q", runtime.Version(), info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected platform %q", info.Platform)
	}
}

func TestGetLdflagsWin(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	GitCommit = "abc1234def"
	BuildTime = "2024-01-15T10:30:00Z"

	info := Get()
	if info.Version != "1.0.0" {
		t.Errorf("expected '1.0.0', got %q", info.Version)
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected commit truncated to 'abc1234', got %q", info.GitCommit)
	}
	if info.BuildTime != "2024-01-15T10:30:00Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "dev"}, "dev"},
		{"with commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Short(); got != tc.want {
				t.Errorf("Short() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "1.2.0",
		GitCommit: "abc1234",
		BuildTime: "2024-01-15T10:30:00Z",
		GoVersion: "go1.26.0",
		Platform:  "linux/amd64",
	}
	want := "1.2.0-abc1234 (built 2024-01-15T10:30:00Z, go1.26.0 linux/amd64)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	info.BuildTime = ""
	if got := info.String(); strings.Contains(got, "built") {
		t.Errorf("unexpected build time in %q", got)
	}
}
