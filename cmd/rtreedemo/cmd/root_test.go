package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote to
// its output and error streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_ShowsHelp(t *testing.T) {
	// Given: a root command

	// When: executing with --help
	out, _, err := execute(t, "--help")

	// Then: it should list the subcommands
	require.NoError(t, err)
	assert.Contains(t, out, "rtreedemo")
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "--trace")
}

func TestRootCmd_Version(t *testing.T) {
	// When: executing with --version
	out, _, err := execute(t, "--version")

	// Then: it should print the version template
	require.NoError(t, err)
	assert.Equal(t, "rtreedemo version "+Version+"\n", out)
}

func TestRootCmd_Trace(t *testing.T) {
	// Given: enough inserts to split the root
	args := []string{"--trace", "run", "--targets", "30", "--max-entries", "4", "--min-entries", "2"}
	defer func() { traceMode = false }()

	// When: executing with --trace
	out, errOut, err := execute(t, args...)

	// Then: index activity should be traced to stderr, not stdout
	require.NoError(t, err)
	assert.Contains(t, errOut, "tracing enabled")
	assert.Contains(t, errOut, "rtree: root split")
	assert.NotContains(t, out, "rtree: root split")
}
