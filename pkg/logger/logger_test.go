package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "uiprobe.log")
	require.NoError(t, Init(path))
	defer Close()

	Info("connected to %s", "emulator-5554")
	Error("adb failed: %v", "boom")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "connected to emulator-5554")
	assert.Contains(t, string(data), "level=error")
}

func TestSetVerbose_EnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	defer Close()

	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetVerbose(true)
	Debug("shown %d", 1)
	WithFields(map[string]interface{}{"serial": "abc"}, "fields")
	assert.Contains(t, buf.String(), "shown 1")
	assert.Contains(t, buf.String(), "serial=abc")

	SetVerbose(false)
	Debug("hidden again")
	assert.NotContains(t, buf.String(), "hidden again")
}

func TestUninitialized_IsSilent(t *testing.T) {
	Close()
	Info("nothing")
	Warn("nothing")
	SetVerbose(true)
	assert.NotNil(t, GetWriter())
}
