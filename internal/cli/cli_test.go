package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slidego/puzzle"
)

// execute runs the root command with args and returns stdout and the log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), logs.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "slidego.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEncodeCommand(t *testing.T) {
	out, _, err := execute(t, "encode", "15,14,13,12,11,10,9,8,7,6,5,4,3,2,1,0")
	require.NoError(t, err)
	assert.Equal(t, "0x0001b97789abcdef\n", out)

	out, _, err = execute(t, append([]string{"encode"}, strings.Fields("0 1 2 3 4 5 6 7 8 9 10 11 12 13 15 14")...)...)
	require.NoError(t, err)
	assert.Equal(t, "0x0001000000000000\n", out)

	_, _, err = execute(t, "encode", "1,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15")
	var ia *puzzle.ErrInvalidArrangement
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "duplicate", ia.Reason)

	_, _, err = execute(t, "encode", "1,2,x")
	assert.Error(t, err)
}

func TestEncodeCommand_Score(t *testing.T) {
	out, _, err := execute(t, "encode", "--score", "0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15")
	require.NoError(t, err)
	assert.Equal(t, "0x0020000000000000\n", out) // 16 << 49
}

func TestDecodeCommand(t *testing.T) {
	out, _, err := execute(t, "decode", "0x0001b97789abcdef")
	require.NoError(t, err)
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "score")

	_, _, err = execute(t, "decode", "0xf0")
	assert.ErrorIs(t, err, puzzle.ErrInvalidEncoding)

	_, _, err = execute(t, "decode", "nope")
	assert.Error(t, err)

	_, _, err = execute(t, "decode")
	assert.Error(t, err)
}

func TestSolveCommand(t *testing.T) {
	out, logs, err := execute(t, "solve", "--heap", "-q", "1,2,6,3,4,5,0,7,8,9,10,11,12,13,14,15")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in 3 moves")
	assert.Contains(t, logs, "run=")
	assert.Contains(t, logs, "session opened")
}

func TestSolveCommand_Path(t *testing.T) {
	out, _, err := execute(t, "solve", "--heap", "--scramble", "4", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in")
	assert.Contains(t, out, iconArrow)
}

func TestSolveCommand_Config(t *testing.T) {
	path := writeConfig(t, `
table_size = 1024
heap = true
progress_interval = "0s"
`)

	out, _, err := execute(t, "solve", "--config", path, "-q", "--scramble", "6", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in")
}

func TestSolveCommand_StateLimit(t *testing.T) {
	out, _, err := execute(t, "solve", "--heap", "--max-states", "10", "--scramble", "40", "--seed", "5")
	require.NoError(t, err)

	if !strings.Contains(out, "solved in") {
		assert.Contains(t, out, stopMaxStates)
	}
}

func TestSolveCommand_InvalidBoard(t *testing.T) {
	_, _, err := execute(t, "solve", "--heap", "1,2,3")
	assert.Error(t, err)

	_, _, err = execute(t, "solve", "--heap", "--scramble", "-1")
	assert.Error(t, err)
}

func TestExploreCommand(t *testing.T) {
	out, _, err := execute(t, "explore", "--heap", "--max-states", "100", "--scramble", "0")
	require.NoError(t, err)
	assert.Contains(t, out, stopMaxStates)
	assert.Contains(t, out, "depth 0")
	assert.Contains(t, out, "table 0")
}

func TestExploreCommand_MemoryLimit(t *testing.T) {
	path := writeConfig(t, "table_size = 256\n")

	out, _, err := execute(t, "explore", "--config", path, "--heap", "--memory", "4096", "--random")
	require.NoError(t, err)
	assert.Contains(t, out, stopMemory)
}

func TestExploreCommand_Slides(t *testing.T) {
	out, _, err := execute(t, "explore", "--heap", "--slides", "--max-states", "50", "--scramble", "0")
	require.NoError(t, err)
	assert.Contains(t, out, stopMaxStates)
}
