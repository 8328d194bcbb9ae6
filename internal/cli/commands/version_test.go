package commands

import (
	"bytes"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut []string
	}{
		{
			name:    "release version",
			version: "0.1.0",
			wantOut: []string{"schemaguard v0.1.0", "dbt model documentation validator", "go: "},
		},
		{
			name:    "dev version",
			version: "dev",
			wantOut: []string{"schemaguard vdev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			require.NoError(t, cmd.Execute())
			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestBuildDetails(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want []string
	}{
		{
			name: "no build info",
			info: nil,
			want: []string{"go: " + runtime.Version()},
		},
		{
			name: "clean checkout",
			info: &debug.BuildInfo{
				GoVersion: "go1.24.11",
				Settings: []debug.BuildSetting{
					{Key: "vcs", Value: "git"},
					{Key: "vcs.revision", Value: "3f2c9a1b7e6d5c4b3a29180716f5e4d3c2b1a090"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			want: []string{"commit: 3f2c9a1b7e6d", "go: go1.24.11"},
		},
		{
			name: "modified work tree",
			info: &debug.BuildInfo{
				GoVersion: "go1.24.11",
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: []string{"commit: abc123-dirty", "go: go1.24.11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDetails(tt.info))
		})
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}
