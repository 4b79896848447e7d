package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "mines", cmd.Use)

	for _, name := range []string{"play", "board"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)
}

func TestBoardCommand(t *testing.T) {
	out, err := execute(t, "", "board", "-d", "4:5:3", "--seed", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "4:5:3 (4:5:3) seed=5", lines[0])
	assert.Equal(t, 3, strings.Count(out, "*"))
	for _, line := range lines[1:] {
		assert.Len(t, strings.Fields(line), 5)
		assert.NotContains(t, line, "#")
	}

	again, err := execute(t, "", "board", "-d", "4:5:3", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same board")
}

func TestBoardCommandPreset(t *testing.T) {
	out, err := execute(t, "", "board", "--seed", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "easy (9:9:10) seed=1\n"))
	assert.Equal(t, 10, strings.Count(out, "*"))
}

func TestBoardCommandInvalidDifficulty(t *testing.T) {
	_, err := execute(t, "", "board", "-d", "3:3:9")
	require.Error(t, err)
}

func TestPlayCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(path, []byte("*.\n..\n"), 0o644))

	out, err := execute(t, "f 0 0\no 0 1\no 1 0\no 1 1\nq\n", "play", "--layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, "board cleared, you win!")
	assert.Contains(t, out, "status: won")
}

func TestPlayCommandLoss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(path, []byte("*.\n..\n"), 0o644))

	out, err := execute(t, "o 0 0\n", "play", "--layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, "boom!")
	assert.Contains(t, out, "status: lost")
}

func TestPlayCommandConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: medium\nseed: 3\n"), 0o644))

	out, err := execute(t, "q\n", "play", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "15 | ")
	assert.Contains(t, out, "mines: 40")
}

func TestPlayCommandMissingLayout(t *testing.T) {
	_, err := execute(t, "", "play", "--layout", filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
