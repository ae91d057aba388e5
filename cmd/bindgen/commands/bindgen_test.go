package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roc-streaming/bindgen/errors"
)

func TestCheckOutputDir(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, checkOutputDir(dir))

	err := checkOutputDir(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, errors.ErrMissingOutputDir)

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	err = checkOutputDir(file)
	assert.ErrorIs(t, err, errors.ErrMissingOutputDir)
}

func TestRootCmdFlags(t *testing.T) {
	flags := RootCmd.Flags()

	for _, name := range []string{
		"target", "toolkit-dir", "doxygen-dir",
		"go-output-dir", "java-output-dir", "verbose",
	} {
		assert.NotNil(t, flags.Lookup(name), "missing flag %s", name)
	}

	target, err := flags.GetString("target")
	require.NoError(t, err)
	assert.Equal(t, "all", target)
}
