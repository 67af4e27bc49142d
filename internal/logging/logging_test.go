package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "custom.log")
	t.Setenv("ESTUDAR_LOG", p)

	got, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultLogPath_XDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ESTUDAR_LOG", "")
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "estudar", "estudar.log"), got)
	assert.DirExists(t, filepath.Join(dir, "estudar"))
}

func TestNew_WritesFileAndConsole(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "logs", "estudar.log")
	var console bytes.Buffer
	opts.Console = &console

	log, err := New(opts)
	require.NoError(t, err)
	log.Info("quiz started")
	log.Debug("hidden at info level")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(opts.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"quiz started"`)
	assert.NotContains(t, string(data), "hidden at info level")
	assert.Contains(t, console.String(), "quiz started")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "x.log")
	opts.Level = "loud"

	_, err := New(opts)
	assert.Error(t, err)
}
