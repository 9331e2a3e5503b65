package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHome_EnvVar(t *testing.T) {
	ResetHome()
	t.Setenv(envHome, "/custom/path")

	assert.Equal(t, "/custom/path", GetHome())
}

func TestGetHome_FallbackIsNonEmpty(t *testing.T) {
	ResetHome()
	t.Setenv(envHome, "")

	assert.NotEmpty(t, GetHome())
}

func TestGetHome_Cached(t *testing.T) {
	ResetHome()
	t.Setenv(envHome, "/first")
	first := GetHome()

	t.Setenv(envHome, "/second")
	assert.Equal(t, first, GetHome())
}

func TestLogPaths(t *testing.T) {
	ResetHome()
	t.Setenv(envHome, "/test/home")

	assert.Equal(t, filepath.Join("/test/home", "logs"), GetLogDir())
	assert.Equal(t, filepath.Join("/test/home", "logs", "uiprobe.log"), DefaultLogFile())
}

func TestBinaryHome(t *testing.T) {
	tmpDir := t.TempDir()
	binDir := filepath.Join(tmpDir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	exe := filepath.Join(binDir, "uiprobe")
	require.NoError(t, os.WriteFile(exe, []byte{}, 0755))

	home, ok := binaryHome(exe)
	require.True(t, ok)
	want, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, want, home)

	_, ok = binaryHome(filepath.Join(tmpDir, "uiprobe"))
	assert.False(t, ok)
}
