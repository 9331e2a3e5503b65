package config

import (
	"os"
	"path/filepath"
	"sync"
)

const envHome = "UIPROBE_HOME"

var (
	homeOnce sync.Once
	homeDir  string
)

// GetHome returns the uiprobe home directory.
//
// Resolution order:
//  1. $UIPROBE_HOME environment variable
//  2. Parent of the binary's directory (if binary is in <home>/bin/)
//  3. Current working directory (development fallback)
func GetHome() string {
	homeOnce.Do(func() {
		homeDir = resolveHome()
	})
	return homeDir
}

// GetLogDir returns <home>/logs.
func GetLogDir() string {
	return filepath.Join(GetHome(), "logs")
}

// DefaultLogFile returns <home>/logs/uiprobe.log.
func DefaultLogFile() string {
	return filepath.Join(GetLogDir(), "uiprobe.log")
}

func resolveHome() string {
	if env := os.Getenv(envHome); env != "" {
		return env
	}

	if execPath, err := os.Executable(); err == nil {
		if home, ok := binaryHome(execPath); ok {
			return home
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}

	return "."
}

// binaryHome returns <home> when execPath resolves to <home>/bin/<binary>.
func binaryHome(execPath string) (string, bool) {
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	binDir := filepath.Dir(execPath)
	if filepath.Base(binDir) != "bin" {
		return "", false
	}
	return filepath.Dir(binDir), true
}

// ResetHome resets the cached home directory (for testing).
func ResetHome() {
	homeOnce = sync.Once{}
	homeDir = ""
}
