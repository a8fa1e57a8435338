package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo holds the version, date and commit injected with -ldflags.
// Any of them may be empty for local builds.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// Version returns the linker-injected version or fallback when the binary
// was built without one.
func (a AppBuildInfo) Version(fallback string) string {
	if a.version == "" {
		return fallback
	}
	return a.version
}

// String renders the startup banner, one field per line, with "N/A" for
// missing values.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		OrNotAvailable(a.version), OrNotAvailable(a.date), OrNotAvailable(a.commit))
}

// OrNotAvailable returns s, or "N/A" when s is empty.
func OrNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
