// Copyright (c) 2021 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "testing"

// TestSemVerParsing ensures parsing a semantic version string works as
// expected.
func TestSemVerParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ver     string // semantic version string to parse
		major   uint   // expected major version
		minor   uint   // expected minor version
		patch   uint   // expected patch version
		pre     string // expected pre-release string
		build   string // expected build metadata string
		invalid bool   // expected error
	}{
		{ver: "1.0.0", major: 1},
		{ver: "10.20.30", major: 10, minor: 20, patch: 30},
		{ver: "1.0.0-pre", major: 1, pre: "pre"},
		{ver: "1.4.2-rc.1+build.1", major: 1, minor: 4, patch: 2, pre: "rc.1",
			build: "build.1"},
		{ver: "2.0.0+release.local", major: 2, build: "release.local"},
		{ver: "1.2.3----RC-SNAPSHOT.12.9.1--.12+788", major: 1, minor: 2,
			patch: 3, pre: "---RC-SNAPSHOT.12.9.1--.12", build: "788"},
		{ver: "1.2", invalid: true},
		{ver: "01.1.1", invalid: true},
		{ver: "1.0.0-alpha..1", invalid: true},
		{ver: "1.0.0-alpha_beta", invalid: true},
		{ver: "9.8.7+meta+meta", invalid: true},
		{ver: "+justmeta", invalid: true},
		{
			// Would be valid except major is > max uint64.
			ver:     "99999999999999999999999.999999999999999999.99999999999999999",
			invalid: true,
		},
	}

	for _, test := range tests {
		major, minor, patch, pre, build, err := parseSemVer(test.ver)
		if test.invalid && err == nil {
			t.Errorf("%q: did not receive expected error", test.ver)
			continue
		}
		if !test.invalid && err != nil {
			t.Errorf("%q: unexpected err: %v", test.ver, err)
			continue
		}
		if test.invalid {
			continue
		}
		if major != test.major || minor != test.minor || patch != test.patch {
			t.Errorf("%q: got %d.%d.%d, want %d.%d.%d", test.ver, major, minor,
				patch, test.major, test.minor, test.patch)
		}
		if pre != test.pre || build != test.build {
			t.Errorf("%q: got pre %q build %q, want pre %q build %q", test.ver,
				pre, build, test.pre, test.build)
		}
	}
}

// TestNormalizeString ensures characters outside of the semantic alphabet are
// removed.
func TestNormalizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"release.local", "release.local"},
		{"feature/params_v2", "featureparamsv2"},
		{"go1.21 linux", "go1.21linux"},
		{"", ""},
	}
	for _, test := range tests {
		if got := NormalizeString(test.in); got != test.want {
			t.Errorf("%q: got %q, want %q", test.in, got, test.want)
		}
	}
}

// TestVersionString ensures the application version parses and matches the
// parsed components.
func TestVersionString(t *testing.T) {
	t.Parallel()

	major, minor, patch, pre, build, err := parseSemVer(String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if major != Major || minor != Minor || patch != Patch ||
		pre != PreRelease || build != BuildMetadata {
		t.Fatalf("version %q does not match its components", String())
	}
}
