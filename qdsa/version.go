package qdsa

import "github.com/blang/semver/v4"

var version = semver.MustParse("0.1.0")

// Version reports the module's semantic version.
func Version() semver.Version {
	return version
}
