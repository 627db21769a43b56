package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCheckCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--file", "testdata/check_case.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	want := "3 is compatible with int\n" +
		"\"hello\" is NOT compatible with int\n" +
		"[1 2] is compatible with Sequence[int]\n"
	assert.Equal(t, want, buf.String())
}

func TestCheckCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewCheckCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--file", "testdata/check_case.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "basic", data["backend"])

	verdicts, ok := data["verdicts"].([]any)
	require.True(t, ok)
	require.Len(t, verdicts, 3)

	second, ok := verdicts[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, second["compatible"])
	assert.Contains(t, second["reason"], "type hint mismatch")
}

func TestCheckCommandNoChecks(t *testing.T) {
	path := writeCase(t, "function: f\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCheckCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--file", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no 'checks' entries")
}
