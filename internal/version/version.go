package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the cidl CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the build metadata reported by `cidl version`.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

// Current returns the build metadata of the running binary.
func Current() Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		GitMessage: GitMessage,
		BuildDate:  BuildDate,
	}
}

// Colored renders v with each numeric component in its own color. Anything
// after the patch number (pre-release, build) is left as is.
func Colored(v string) string {
	major, rest, ok := strings.Cut(v, ".")
	if !ok {
		return v
	}
	minor, rest, ok := strings.Cut(rest, ".")
	if !ok {
		return v
	}
	patch, suffix := rest, ""
	for i, r := range rest {
		if r < '0' || r > '9' {
			patch, suffix = rest[:i], rest[i:]
			break
		}
	}
	return versionMajorColor.Sprint(major) + "." +
		versionMinorColor.Sprint(minor) + "." +
		versionPatchColor.Sprint(patch) + suffix
}

