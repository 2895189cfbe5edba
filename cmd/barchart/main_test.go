package main

import (
	"runtime/debug"
	"testing"
)

var buildVersionTests = []struct {
	name      string
	ldVersion string
	ldCommit  string
	info      *debug.BuildInfo
	ok        bool
	v, c, d   string
}{
	{"no info", "dev", "", nil, false, "dev", "", ""},
	{"devel", "dev", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true, "dev", "", ""},
	{"module", "dev", "", &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}, true, "v1.2.0", "abc123", "2026-01-02T03:04:05Z"},
	{"ldflags win", "v2.0.0", "fff", &debug.BuildInfo{
		Main:     debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}, true, "v2.0.0", "fff", ""},
}

func TestBuildVersion(t *testing.T) {
	defer func(v, c string) { version, commit = v, c }(version, commit)
	for _, tc := range buildVersionTests {
		t.Run(tc.name, func(t *testing.T) {
			version, commit = tc.ldVersion, tc.ldCommit
			v, c, d := buildVersion(tc.info, tc.ok)
			if v != tc.v || c != tc.c || d != tc.d {
				t.Errorf("got %q %q %q, want %q %q %q", v, c, d, tc.v, tc.c, tc.d)
			}
		})
	}
}
