// Copyright (c) 2025 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "testing"

// TestSemVerParsing ensures parsing a semantic version string works as
// expected.
func TestSemVerParsing(t *testing.T) {
	tests := []struct {
		ver     string // semantic version string to parse
		major   uint   // expected major version
		minor   uint   // expected minor version
		patch   uint   // expected patch version
		pre     string // expected pre-release string
		build   string // expected build metadata string
		invalid bool   // expected error
	}{{
		ver:   "0.0.4",
		major: 0,
		minor: 0,
		patch: 4,
	}, {
		ver:   "1.2.3",
		major: 1,
		minor: 2,
		patch: 3,
	}, {
		ver:   "10.20.30",
		major: 10,
		minor: 20,
		patch: 30,
	}, {
		ver:   "1.0.0-pre",
		major: 1,
		minor: 0,
		patch: 0,
		pre:   "pre",
	}, {
		ver:   "1.0.0-alpha.beta.1",
		major: 1,
		minor: 0,
		patch: 0,
		pre:   "alpha.beta.1",
	}, {
		ver:   "1.0.0-alpha.0valid",
		major: 1,
		minor: 0,
		patch: 0,
		pre:   "alpha.0valid",
	}, {
		ver:   "1.0.0-rc.1+build.1",
		major: 1,
		minor: 0,
		patch: 0,
		pre:   "rc.1",
		build: "build.1",
	}, {
		ver:   "2.0.0+build.1848",
		major: 2,
		minor: 0,
		patch: 0,
		build: "build.1848",
	}, {
		ver:   "1.1.2+meta-valid",
		major: 1,
		minor: 1,
		patch: 2,
		build: "meta-valid",
	}, {
		ver:   "1.0.0+0.build.1-rc.10000aaa-kk-0.1",
		major: 1,
		minor: 0,
		patch: 0,
		build: "0.build.1-rc.10000aaa-kk-0.1",
	}, {
		ver:   "10.2.3-DEV-SNAPSHOT",
		major: 10,
		minor: 2,
		patch: 3,
		pre:   "DEV-SNAPSHOT",
	}, {
		ver:   "1.2.3----RC-SNAPSHOT.12.9.1--.12+788",
		major: 1,
		minor: 2,
		patch: 3,
		pre:   "---RC-SNAPSHOT.12.9.1--.12",
		build: "788",
	}, {
		ver:   "1.0.0-0A.is.legal",
		major: 1,
		minor: 0,
		patch: 0,
		pre:   "0A.is.legal",
	}, {
		ver:     "1",
		invalid: true,
	}, {
		ver:     "1.2",
		invalid: true,
	}, {
		ver:     "1.2.3.4",
		invalid: true,
	}, {
		ver:     "01.1.1",
		invalid: true,
	}, {
		ver:     "1.01.1",
		invalid: true,
	}, {
		ver:     "1.1.01",
		invalid: true,
	}, {
		ver:     "1.2.3-0123",
		invalid: true,
	}, {
		ver:     "1.2.3-0123.0123",
		invalid: true,
	}, {
		ver:     "1.1.2+.123",
		invalid: true,
	}, {
		ver:     "1.0.0-alpha_beta",
		invalid: true,
	}, {
		ver:     "1.0.0-alpha..1",
		invalid: true,
	}, {
		ver:     "+invalid",
		invalid: true,
	}, {
		ver:     "-invalid",
		invalid: true,
	}, {
		ver:     "alpha.beta",
		invalid: true,
	}, {
		ver:     "1.2-SNAPSHOT",
		invalid: true,
	}, {
		ver:     "9.8.7+meta+meta",
		invalid: true,
	}, {
		ver:     "9.8.7-whatever+meta+meta",
		invalid: true,
	}, {
		// Would be valid except major is > max uint64.
		ver:     "99999999999999999999999.999999999999999999.99999999999999999",
		invalid: true,
	}}

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

		if major != test.major {
			t.Errorf("%q: mismatched major -- got %d, want %d", test.ver,
				major, test.major)
			continue
		}

		if minor != test.minor {
			t.Errorf("%q: mismatched minor -- got %d, want %d", test.ver,
				minor, test.minor)
			continue
		}

		if patch != test.patch {
			t.Errorf("%q: mismatched patch -- got %d, want %d", test.ver,
				patch, test.patch)
			continue
		}

		if pre != test.pre {
			t.Errorf("%q: mismatched pre-release -- got %s, want %s", test.ver,
				pre, test.pre)
			continue
		}

		if build != test.build {
			t.Errorf("%q: mismatched buildmetadata -- got %s, want %s",
				test.ver, build, test.build)
			continue
		}
	}
}

// TestNormalizeString ensures stripping characters that are not in the
// semantic version alphabet works as expected.
func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string // string to normalize
		want string // expected result
	}{
		{"", ""},
		{"abc123", "abc123"},
		{"release.local", "release.local"},
		{"rc-1", "rc-1"},
		{"a b\tc", "abc"},
		{"a_b/c:d", "abcd"},
		{"v1.0.0+build", "v1.0.0build"},
		{"αbeta", "beta"},
	}

	for _, test := range tests {
		if got := NormalizeString(test.in); got != test.want {
			t.Errorf("%q: unexpected result -- got %q, want %q", test.in, got,
				test.want)
			continue
		}
	}
}
