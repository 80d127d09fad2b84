package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	prevNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prevNoColor }()

	prevVersion, prevBuild, prevCommit := Version, BuildTime, GitCommit
	defer func() { Version, BuildTime, GitCommit = prevVersion, prevBuild, prevCommit }()

	tests := []struct {
		name                   string
		version, build, commit string
		want                   string
	}{
		{name: "defaults", version: "dev", build: "unknown", want: "orgaudit dev (built unknown)"},
		{name: "release", version: "1.2.0", build: "2024-05-01T10:00:00Z", commit: "abc1234", want: "orgaudit 1.2.0 (built 2024-05-01T10:00:00Z, commit abc1234)"},
		{name: "blank values", version: " ", build: "", want: "orgaudit dev (built unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, BuildTime, GitCommit = tt.version, tt.build, tt.commit
			assert.Equal(t, tt.want, Banner())
		})
	}
}
