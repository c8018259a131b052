// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo holds the version, date, and commit stamped into the binary at
// link time. The fields are unexported so the metadata cannot drift after
// startup; readers go through the accessor methods.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo packages the linker-injected build metadata for the version
// endpoint and startup diagnostics.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version of the running binary.
func (b AppBuildInfo) BuildVersion() string {
	return b.buildVersion
}

// BuildDate returns the timestamp recorded when the binary was built.
func (b AppBuildInfo) BuildDate() string {
	return b.buildDate
}

// BuildCommit returns the VCS commit the binary was built from.
func (b AppBuildInfo) BuildCommit() string {
	return b.buildCommit
}
