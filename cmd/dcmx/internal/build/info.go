// Package build carries version metadata injected at link time via
// -ldflags, the same pattern the teacher's own cmd used.
package build

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var info *Info

// SetBuildInfo records the version/commit/date triple main() received from
// -ldflags. Safe to call at most once, before Get is first called.
func SetBuildInfo(version, commit, date string) {
	info = &Info{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Get returns the current build info, defaulting to "dev" values if
// SetBuildInfo was never called (e.g. `go run`).
func Get() Info {
	if info == nil {
		return Info{
			Version:   "dev",
			Commit:    "none",
			BuildDate: "unknown",
			GoVersion: runtime.Version(),
			Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		}
	}
	return *info
}

// String renders a single-line human summary.
func (i Info) String() string {
	return fmt.Sprintf("dcmx %s (commit %s, built %s, %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}

// JSON renders Info as indented JSON.
func (i Info) JSON() (string, error) {
	b, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
