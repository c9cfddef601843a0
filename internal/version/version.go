// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2025 The clrsign developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for clrsign.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const (
	// semanticAlphabet defines the allowed characters for the pre-release
	// portion of a semantic version string.
	semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// semanticBuildAlphabet defines the allowed characters for the build
	// portion of a semantic version string.
	semanticBuildAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease is defined as a variable so it can be overridden during the
	// build process with:
	// '-ldflags "-X github.com/cloreai/clrsign/internal/version.PreRelease=foo"'
	// if needed.  It MUST only contain characters from semanticAlphabet per
	// the semantic versioning spec.
	PreRelease = "beta"

	// BuildMetadata is defined as a variable so it can be overridden during
	// the build process with:
	// '-ldflags "-X github.com/cloreai/clrsign/internal/version.BuildMetadata=foo"'
	// if needed.  It MUST only contain characters from semanticBuildAlphabet
	// per the semantic versioning spec.  When empty, the VCS revision
	// recorded by the Go toolchain is used if there is one.
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).
func String() string {
	return format(Major, Minor, Patch, PreRelease, buildMetadata())
}

// format assembles a version string from its parts.  The pre-release and
// build metadata are stripped of invalid characters and omitted when empty.
func format(major, minor, patch uint, preRelease, build string) string {
	version := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	// The hyphen called for by the semantic versioning spec is added here
	// and must not be part of the pre-release string.
	if preRelease = NormalizePreRelString(preRelease); preRelease != "" {
		version = fmt.Sprintf("%s-%s", version, preRelease)
	}

	// Likewise for the plus preceding the build metadata.
	if build = NormalizeBuildString(build); build != "" {
		version = fmt.Sprintf("%s+%s", version, build)
	}

	return version
}

// buildMetadata returns BuildMetadata, falling back to a short VCS revision
// from the embedded build info.
func buildMetadata() string {
	if BuildMetadata != "" {
		return BuildMetadata
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if revision != "" && dirty {
		revision += ".dirty"
	}
	return revision
}

// normalizeSemString returns the passed string stripped of all characters
// which are not valid according to the provided semantic versioning alphabet.
func normalizeSemString(str, alphabet string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(alphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// NormalizePreRelString returns the passed string stripped of all characters
// which are not valid according to the semantic versioning guidelines for
// pre-release strings.  In particular they MUST only contain characters in
// semanticAlphabet.
func NormalizePreRelString(str string) string {
	return normalizeSemString(str, semanticAlphabet)
}

// NormalizeBuildString returns the passed string stripped of all characters
// which are not valid according to the semantic versioning guidelines for build
// metadata strings.  In particular they MUST only contain characters in
// semanticBuildAlphabet.
func NormalizeBuildString(str string) string {
	return normalizeSemString(str, semanticBuildAlphabet)
}
