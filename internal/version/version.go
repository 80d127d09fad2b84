// Package version holds build metadata for the orgaudit CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "dev"

	// BuildTime is the build timestamp in ISO-8601.
	BuildTime = "unknown"

	// GitCommit is an optional git commit hash.
	GitCommit = ""
)

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
	metaColor    = color.New(color.FgHiBlack)
)

// Banner renders the one-line version banner. Colors follow fatih/color's
// terminal detection and the NO_COLOR convention.
func Banner() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}

	meta := "built " + valueOrUnknown(BuildTime)
	if commit := strings.TrimSpace(GitCommit); commit != "" {
		meta += ", commit " + commit
	}

	return fmt.Sprintf("%s %s %s", nameColor.Sprint("orgaudit"), versionColor.Sprint(v), metaColor.Sprint("("+meta+")"))
}

func valueOrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
