package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	testData := map[string]struct {
		name     string
		content  string
		expected map[string]any
	}{
		"yaml": {
			name:    "model.yaml",
			content: "num_samples: 500\ntarget_column: disease_cases\n",
			expected: map[string]any{
				"num_samples":   500,
				"target_column": "disease_cases",
			},
		},
		"json": {
			name:    "model.json",
			content: `{"num_samples": 500, "target_column": "disease_cases"}`,
			expected: map[string]any{
				"num_samples":   float64(500),
				"target_column": "disease_cases",
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, td.name, td.content)

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, td.expected, cfg)
		})
	}
}

func TestLoadInto(t *testing.T) {
	type modelConfig struct {
		NumSamples   int    `yaml:"num_samples" json:"num_samples"`
		TargetColumn string `yaml:"target_column" json:"target_column"`
	}

	path := writeFile(t, "model.yaml", "num_samples: 250\ntarget_column: cases\n")

	var cfg modelConfig
	require.NoError(t, LoadInto(path, &cfg))
	assert.Equal(t, modelConfig{NumSamples: 250, TargetColumn: "cases"}, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "model.yaml", "num_samples: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}
