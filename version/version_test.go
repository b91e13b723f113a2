package version

import (
	"runtime/debug"
	"testing"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()
	orig, origVersion, origCommit := readBuildInfo, Version, Commit
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() {
		readBuildInfo, Version, Commit = orig, origVersion, origCommit
	})
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		bi      *debug.BuildInfo
		ok      bool
		want    string
	}{
		{"no build info", "dev", "", nil, false, "dev"},
		{"ldflags commit wins", "1.2.0", "feedbeef1234", &debug.BuildInfo{
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}},
		}, true, "1.2.0-feedbee"},
		{"vcs revision and dirty", "dev", "", &debug.BuildInfo{
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true, "dev-0123456-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.bi, tt.ok)
			Version, Commit = tt.version, tt.commit
			if got := Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet_GoVersion(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{GoVersion: "go1.26.0"}, true)
	if got := Get().GoVersion; got != "go1.26.0" {
		t.Errorf("GoVersion = %q", got)
	}
}
