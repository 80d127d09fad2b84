package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		check   func(t *testing.T, cfg *Config)
		name    string
		file    string
		content string
		errMsg  string
		wantErr bool
	}{
		{
			name: "valid complete yaml config",
			file: "policy.yaml",
			content: `policy:
  salary:
    min_ratio: 1.1
    max_ratio: 1.6
  max_depth: 3
  hop_limit: 50

input:
  delimiter: ";"
  skip_header: false

source:
  s3:
    region: eu-west-1
    endpoint: http://localhost:4566
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.InDelta(t, 1.1, cfg.Policy.Salary.MinRatio, 1e-9)
				assert.InDelta(t, 1.6, cfg.Policy.Salary.MaxRatio, 1e-9)
				assert.Equal(t, 3, cfg.Policy.MaxDepth)
				assert.Equal(t, 50, cfg.Policy.HopLimit)
				assert.Equal(t, ';', cfg.Delim())
				assert.False(t, cfg.Input.SkipHeader)
				assert.Equal(t, "eu-west-1", cfg.Source.S3.Region)
				assert.Equal(t, "http://localhost:4566", cfg.Source.S3.Endpoint)
			},
		},
		{
			name: "partial yaml keeps defaults",
			file: "partial.yml",
			content: `policy:
  max_depth: 6
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 6, cfg.Policy.MaxDepth)
				assert.InDelta(t, DefaultMinRatio, cfg.Policy.Salary.MinRatio, 1e-9)
				assert.InDelta(t, DefaultMaxRatio, cfg.Policy.Salary.MaxRatio, 1e-9)
				assert.Equal(t, DefaultHopLimit, cfg.Policy.HopLimit)
				assert.Equal(t, ',', cfg.Delim())
				assert.True(t, cfg.Input.SkipHeader)
			},
		},
		{
			name: "toml config",
			file: "policy.toml",
			content: `[policy]
max_depth = 2

[policy.salary]
min_ratio = 1.25
max_ratio = 1.75

[input]
delimiter = "\t"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 2, cfg.Policy.MaxDepth)
				assert.InDelta(t, 1.25, cfg.Policy.Salary.MinRatio, 1e-9)
				assert.InDelta(t, 1.75, cfg.Policy.Salary.MaxRatio, 1e-9)
				assert.Equal(t, '\t', cfg.Delim())
				assert.True(t, cfg.Input.SkipHeader)
			},
		},
		{
			name:    "empty file yields defaults",
			file:    "empty.yaml",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "inverted band",
			file: "bad.yaml",
			content: `policy:
  salary:
    min_ratio: 1.5
    max_ratio: 1.2
`,
			wantErr: true,
			errMsg:  "must not be below min_ratio",
		},
		{
			name: "negative max depth",
			file: "bad.yaml",
			content: `policy:
  max_depth: -1
`,
			wantErr: true,
			errMsg:  "policy.max_depth must not be negative",
		},
		{
			name: "multi character delimiter",
			file: "bad.yaml",
			content: `input:
  delimiter: "||"
`,
			wantErr: true,
			errMsg:  "input.delimiter must be a single character",
		},
		{
			name:    "invalid yaml",
			file:    "broken.yaml",
			content: "policy: [unterminated",
			wantErr: true,
			errMsg:  "parsing config YAML",
		},
		{
			name:    "invalid toml",
			file:    "broken.toml",
			content: "[policy\nmax_depth = ",
			wantErr: true,
			errMsg:  "parsing config TOML",
		},
		{
			name:    "unsupported extension",
			file:    "policy.json",
			content: "{}",
			wantErr: true,
			errMsg:  "invalid config path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestPolicyValidate(t *testing.T) {
	valid := Default().Policy

	tests := []struct {
		mutate  func(p *Policy)
		name    string
		wantErr bool
	}{
		{name: "defaults", mutate: func(_ *Policy) {}},
		{name: "equal ratios", mutate: func(p *Policy) { p.Salary.MaxRatio = p.Salary.MinRatio }},
		{name: "zero max depth", mutate: func(p *Policy) { p.MaxDepth = 0 }},
		{name: "zero min ratio", mutate: func(p *Policy) { p.Salary.MinRatio = 0 }, wantErr: true},
		{name: "NaN max ratio", mutate: func(p *Policy) { p.Salary.MaxRatio = math.NaN() }, wantErr: true},
		{name: "infinite min ratio", mutate: func(p *Policy) { p.Salary.MinRatio = math.Inf(1) }, wantErr: true},
		{name: "hop limit too small", mutate: func(p *Policy) { p.HopLimit = p.MaxDepth + 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Policy.MaxDepth = 7

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_depth: 7")
	assert.NotContains(t, string(data), "source:", "empty source section should be omitted")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestLoadConfigTestdata(t *testing.T) {
	for _, name := range []string{"strict.yaml", "strict.toml"} {
		t.Run(name, func(t *testing.T) {
			path, err := filepath.Abs(filepath.Join("..", "..", "testdata", "config", name))
			require.NoError(t, err)

			cfg, err := LoadConfig(path)
			require.NoError(t, err)

			assert.Equal(t, 1.25, cfg.Policy.Salary.MinRatio)
			assert.Equal(t, 1.40, cfg.Policy.Salary.MaxRatio)
			assert.Equal(t, 3, cfg.Policy.MaxDepth)
			assert.Equal(t, 500, cfg.Policy.HopLimit)
			assert.Equal(t, ',', cfg.Delim())
			assert.True(t, cfg.Input.SkipHeader)
		})
	}
}
