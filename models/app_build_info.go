// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// BuildInfoUnknown stands in for build metadata the linker did not inject.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the build metadata stamped into the danmu binaries with
// -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build info with empty values replaced by
// [BuildInfoUnknown].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return BuildInfoUnknown
	}
	return s
}

// BuildVersion returns the release version.
func (a AppBuildInfo) BuildVersion() string {
	return orUnknown(a.version)
}

// BuildDate returns the build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return orUnknown(a.date)
}

// BuildCommit returns the source commit hash.
func (a AppBuildInfo) BuildCommit() string {
	return orUnknown(a.commit)
}

// WriteTo prints the three build lines to w.
func (a AppBuildInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
	return int64(n), err
}
