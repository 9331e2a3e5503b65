package device

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/logger"
)

// ADB is a CommandChannel backed by the adb client binary.
type ADB struct {
	path string
}

// NewADB creates an ADB channel. An empty path searches PATH.
func NewADB(path string) (*ADB, error) {
	if path == "" {
		found, err := findADB()
		if err != nil {
			return nil, err
		}
		path = found
	}
	return &ADB{path: path}, nil
}

// Path returns the adb binary in use.
func (a *ADB) Path() string {
	return a.path
}

// Execute runs "adb -s <serial> shell <command>", streaming stdout and stderr into sink.
func (a *ADB) Execute(serial, command string, sink OutputReceiver) error {
	args := []string{"-s", serial, "shell", command}

	cmd := exec.Command(a.path, args...) //#nosec G204 -- adb path comes from config or PATH
	var stderr bytes.Buffer
	cmd.Stdout = sink
	cmd.Stderr = io.MultiWriter(sink, &stderr)

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		logger.Debug("adb -s %s shell %q [%v]", serial, command, elapsed)
		return nil
	}

	// A non-zero exit from the remote command is not a transport problem; the
	// console text already in sink is what callers classify.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && !isClientError(stderr.String()) {
		logger.Debug("adb -s %s shell %q [%v] exit=%d", serial, command, elapsed, exitErr.ExitCode())
		return nil
	}

	msg := strings.TrimSpace(stderr.String())
	logger.Error("adb -s %s shell %q failed: %v: %s", serial, command, err, msg)
	return core.ErrTransport.
		WithCause(fmt.Errorf("adb %s: %w: %s", strings.Join(args, " "), err, msg)).
		WithDetails(map[string]interface{}{"serial": serial, "command": command})
}

// isClientError reports whether stderr came from the adb client itself
// (device not found, offline, unauthorized) rather than from the remote shell.
func isClientError(stderr string) bool {
	s := strings.TrimSpace(stderr)
	return strings.HasPrefix(s, "error:") || strings.HasPrefix(s, "adb:")
}

// findADB locates the ADB binary.
func findADB() (string, error) {
	if path, err := exec.LookPath("adb"); err == nil {
		return path, nil
	}
	return "", core.ErrTransport.WithMessage("adb not found in PATH; ensure Android SDK platform-tools are installed")
}
