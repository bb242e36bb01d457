// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"github.com/blang/semver/v4"
)

// Version is the semantic version of the build.
const Version = "0.1.0"

// Build may be set at link time with
// -ldflags "-X github.com/misc-programming/miscp-base64/version.Build=<commit>".
var Build string

var appVersion = semver.MustParse(Version)

// String returns the application version, with the build metadata appended
// when it is known.
func String() string {
	v := appVersion
	if Build != "" {
		v.Build = []string{Build}
	}
	return v.String()
}
