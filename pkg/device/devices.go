package device

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/devicelab-dev/uiprobe/pkg/logger"
)

// DeviceInfo describes one entry of "adb devices".
type DeviceInfo struct {
	Serial string `json:"serial"`
	State  string `json:"state"` // device, offline, unauthorized
}

// Online returns true if the device accepts shell commands.
func (d DeviceInfo) Online() bool {
	return d.State == "device"
}

// ListDevices lists devices known to the adb server.
func (a *ADB) ListDevices() ([]DeviceInfo, error) {
	cmd := exec.Command(a.path, "devices") //#nosec G204 -- adb path comes from config or PATH
	cmd.Stderr = logger.GetWriter()
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("adb devices: %w", err)
	}
	return parseDevices(string(out)), nil
}

// FirstAvailable returns the serial of the first online device.
func (a *ADB) FirstAvailable() (string, error) {
	devices, err := a.ListDevices()
	if err != nil {
		return "", err
	}
	for _, d := range devices {
		if d.Online() {
			return d.Serial, nil
		}
	}
	return "", fmt.Errorf("no connected devices found")
}

// parseDevices parses "adb devices" output.
func parseDevices(out string) []DeviceInfo {
	var devices []DeviceInfo
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of") || strings.HasPrefix(line, "*") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		devices = append(devices, DeviceInfo{Serial: parts[0], State: parts[1]})
	}
	return devices
}
