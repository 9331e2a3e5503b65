package automation

import (
	"fmt"
	"strings"
	"time"

	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/outcome"
)

// DefaultSwipeDuration is used when a swipe is given no positive duration.
const DefaultSwipeDuration = 300 * time.Millisecond

// ============================================================================
// Tap
// ============================================================================

// Tap taps the screen at (x, y).
func (c *Client) Tap(x, y int) error {
	return c.input(fmt.Sprintf("input tap %d %d", x, y), core.ErrInvalidTarget)
}

// TapPoint taps p.
func (c *Client) TapPoint(p Point) error {
	return c.Tap(p.X, p.Y)
}

// TapElement taps the center of e.
func (c *Client) TapElement(e Element) error {
	return c.Tap(e.X, e.Y)
}

// ============================================================================
// Swipe
// ============================================================================

// Swipe drags from (x1, y1) to (x2, y2) over d.
func (c *Client) Swipe(x1, y1, x2, y2 int, d time.Duration) error {
	if d <= 0 {
		d = DefaultSwipeDuration
	}
	cmd := fmt.Sprintf("input swipe %d %d %d %d %d", x1, y1, x2, y2, d.Milliseconds())
	return c.input(cmd, core.ErrInvalidTarget)
}

// SwipePoints drags from one point to another.
func (c *Client) SwipePoints(from, to Point, d time.Duration) error {
	return c.Swipe(from.X, from.Y, to.X, to.Y, d)
}

// SwipeElements drags from the center of one element to the center of another.
func (c *Client) SwipeElements(from, to Element, d time.Duration) error {
	return c.Swipe(from.X, from.Y, to.X, to.Y, d)
}

// ============================================================================
// Keys and text
// ============================================================================

// KeyEvent sends a key event. key is a keycode token ("KEYCODE_HOME", "3")
// or a friendly name understood by KeyCode ("home", "back", "enter").
func (c *Client) KeyEvent(key string) error {
	code := KeyCode(key)
	if code == "" {
		return core.ErrInvalidKeyEvent.WithMessage("invalid key event: empty key")
	}
	return c.input("input keyevent "+code, core.ErrInvalidKeyEvent)
}

// InputText types text into the focused field. The remote input method does
// not handle every script; such text is rejected by the device, not here.
func (c *Client) InputText(text string) error {
	return c.input("input text "+escapeText(text), core.ErrInvalidText)
}

// escapeText encodes spaces the way "input text" expects and quotes the
// argument for the remote shell.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, " ", "%s")
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// input runs an input command and maps its console outcome. generic is the
// fault reported when the output carries the error keyword without a
// structured remote fault.
func (c *Client) input(command string, generic *core.ExecutionError) error {
	out, err := c.shell(command)
	if err != nil {
		return err
	}

	res := c.classifier.Classify(out)
	switch res.Kind {
	case outcome.Success:
		return nil
	case outcome.RemoteFault:
		return res.Fault()
	default:
		return generic.
			WithMessage(fmt.Sprintf("%s: %s", generic.Message, res.Description)).
			WithDetails(map[string]interface{}{"command": command, "output": res.Description})
	}
}

// ============================================================================
// App lifecycle
// ============================================================================

// StartApp launches the package's launcher activity. The console output is
// not classified; only transport faults are returned.
func (c *Client) StartApp(pkg string) error {
	if strings.TrimSpace(pkg) == "" {
		return core.ErrInvalidPackage
	}
	_, err := c.shell(fmt.Sprintf("monkey -p %s -c android.intent.category.LAUNCHER 1", pkg))
	return err
}

// StopApp force-stops the package. Only transport faults are returned.
func (c *Client) StopApp(pkg string) error {
	if strings.TrimSpace(pkg) == "" {
		return core.ErrInvalidPackage
	}
	_, err := c.shell("am force-stop " + pkg)
	return err
}
