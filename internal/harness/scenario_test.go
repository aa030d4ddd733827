package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validScenario = `name: sample
description: resolves a constant
circuit:
  - "123 -> x"
steps:
  - resolve_all: true
    expect:
      signals:
        x: "123"
`

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, validScenario)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", scenario.Name)
	assert.Equal(t, []string{"123 -> x"}, scenario.Circuit)
	require.Len(t, scenario.Steps, 1)
	assert.True(t, scenario.Steps[0].ResolveAll)
	require.NotNil(t, scenario.Steps[0].Expect)
	assert.Equal(t, "123", scenario.Steps[0].Expect.Signals["x"])
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `name: typo
description: catches typos
step:
  - resolve_all: true
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			"missing name",
			"description: d\nsteps:\n  - resolve_all: true\n",
			"name is required",
		},
		{
			"missing description",
			"name: n\nsteps:\n  - resolve_all: true\n",
			"description is required",
		},
		{
			"missing steps",
			"name: n\ndescription: d\n",
			"steps list is required",
		},
		{
			"empty step",
			"name: n\ndescription: d\nsteps:\n  - expect:\n      signals:\n        x: \"1\"\n",
			"steps[0]",
		},
		{
			"two operations",
			"name: n\ndescription: d\nsteps:\n  - add: \"1 -> a\"\n    remove: b\n",
			"exactly one operation",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
