package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tester/internal/testutil"
)

// newRunCommandForTest returns a run command with a frozen clock writing to
// the returned stdout and stderr buffers.
func newRunCommandForTest(verbose bool) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newRunCommand(&RunOptions{
		RootOptions: &RootOptions{Verbose: verbose},
		Clock:       testutil.NewDeterministicClock(0),
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd, stdout, stderr
}

func TestRunMissingArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunUnknownSuite(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"nope"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown suite "nope"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Empty(t, buf.String())
}

func TestRunPassingSuite(t *testing.T) {
	cmd, stdout, stderr := newRunCommandForTest(false)
	cmd.SetArgs([]string{"example2"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Tests     : 5/5\n")
	assert.Contains(t, stdout.String(), "Time      : 0 ms\n")
	assert.Contains(t, stdout.String(), "No errors\n")
	assert.Empty(t, stderr.String())
}

func TestRunFailingSuite(t *testing.T) {
	cmd, stdout, stderr := newRunCommandForTest(false)
	cmd.SetArgs([]string{"failures"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, IsTestFailure(err))
	assert.Contains(t, err.Error(), "suite failures failed")
	assert.Contains(t, stdout.String(), "Tests     : 2/5\n")
	assert.Contains(t, stderr.String(), "Errors: \n")
	assert.Contains(t, stderr.String(), "  unknown: Unknown failure type caught\n")
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	cmd, stdout, stderr := newRunCommandForTest(true)
	cmd.SetArgs([]string{"example1"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), `msg="run started"`)
	assert.Contains(t, stderr.String(), `msg="test finished"`)
	assert.Contains(t, stderr.String(), "test=example1")
	assert.NotContains(t, stdout.String(), "level=")
}

func TestRootRunsSuite(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"run", "example1"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "example1")
	assert.Contains(t, stdout.String(), "Assertions: 3\n")
}

func TestListCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list"})

	err := cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	for _, name := range []string{"example1", "example2", "example3", "failures"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "tests grouped by calling tests inside tests")
}
