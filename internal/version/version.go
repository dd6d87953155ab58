// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the tinyprng command line tools.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the application version per the semantic versioning 2.0.0 spec
// (https://semver.org/).
//
// It is defined as a variable so it can be overridden during the build
// process with:
// '-ldflags "-X github.com/decred/tinyprng/internal/version.Version=fullsemver"'
// if needed.
//
// It MUST be a full semantic version or the package will panic at runtime.
var Version = "0.1.0-pre"

// SemVer houses the individual components of a semantic version.
type SemVer struct {
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
}

// String returns the version as a properly formed semantic version string.
func (v SemVer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.BuildMetadata != "" {
		sb.WriteByte('+')
		sb.WriteString(v.BuildMetadata)
	}
	return sb.String()
}

// current is the parsed form of Version.
var current SemVer

func init() {
	var err error
	current, err = Parse(Version)
	if err != nil {
		panic(err)
	}
	if current.BuildMetadata == "" {
		current.BuildMetadata = vcsCommitID()
	}
}

// parseUint converts the passed string to an unsigned integer or returns an
// error if it is invalid.
func parseUint(s string, fieldName string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", fieldName, err)
	}
	return uint(val), nil
}

// checkSemString returns an error if the passed string contains characters that
// are not in the semantic alphabet.
func checkSemString(s, fieldName string) error {
	for _, r := range s {
		if !strings.ContainsRune(semanticAlphabet, r) {
			return fmt.Errorf("malformed semver %s: %q invalid", fieldName, r)
		}
	}
	return nil
}

// Parse parses a semantic version string into its components.
func Parse(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		err := fmt.Errorf("malformed version string %q: does not conform to "+
			"semver specification", s)
		return SemVer{}, err
	}

	var v SemVer
	var err error
	if v.Major, err = parseUint(m[1], "major"); err != nil {
		return SemVer{}, err
	}
	if v.Minor, err = parseUint(m[2], "minor"); err != nil {
		return SemVer{}, err
	}
	if v.Patch, err = parseUint(m[3], "patch"); err != nil {
		return SemVer{}, err
	}
	if err := checkSemString(m[4], "pre-release"); err != nil {
		return SemVer{}, err
	}
	if err := checkSemString(m[5], "buildmetadata"); err != nil {
		return SemVer{}, err
	}
	v.PreRelease, v.BuildMetadata = m[4], m[5]
	return v, nil
}

// Current returns the parsed application version.  When the version does not
// specify build metadata, the metadata is the abbreviated VCS commit the
// binary was built from, if known.
func Current() SemVer {
	return current
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return current.String()
}
