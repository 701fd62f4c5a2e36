// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// notAvailable stands in for build metadata that was not injected.
const notAvailable = "N/A"

// AppBuildInfo is the version metadata of a selectsync binary, injected with
// -ldflags "-X main.buildVersion=..." and shown by the CLI banner and the
// TUI about screen.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// BuildField is one labelled line of [AppBuildInfo].
type BuildField struct {
	Label string
	Value string
}

// NewAppBuildInfo trims the injected values; empty ones read as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.version)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.date)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.commit)
}

// Fields lists version, date and commit in display order.
func (a AppBuildInfo) Fields() []BuildField {
	return []BuildField{
		{Label: "Version", Value: a.BuildVersion()},
		{Label: "Date", Value: a.BuildDate()},
		{Label: "Commit", Value: a.BuildCommit()},
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
