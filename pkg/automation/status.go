package automation

import (
	"strconv"
	"strings"

	"github.com/devicelab-dev/uiprobe/pkg/core"
)

// Status reports whether pkg owns the resumed activity, has a live process,
// or is stopped. The foreground check runs first and short-circuits.
func (c *Client) Status(pkg string) (core.AppStatus, error) {
	if strings.TrimSpace(pkg) == "" {
		return core.AppStopped, core.ErrInvalidPackage
	}

	resumed, err := c.shell("dumpsys activity activities | grep mResumedActivity")
	if err != nil {
		return core.AppStopped, err
	}
	if strings.Contains(resumed, pkg) {
		return core.AppForeground, nil
	}

	pids, err := c.shell("pidof " + pkg)
	if err != nil {
		return core.AppStopped, err
	}
	if parsePID(pids) > 0 {
		return core.AppBackground, nil
	}
	return core.AppStopped, nil
}

// parsePID returns the first whitespace-separated token as a pid, or 0.
func parsePID(out string) int {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil || pid <= 0 {
		return 0
	}
	return pid
}
