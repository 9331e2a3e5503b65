// Package hierarchy captures, sanitizes and parses UIAutomator hierarchy dumps
// and evaluates path queries against them.
package hierarchy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/device"
)

// Remote dump tool defaults
const (
	DumpCommand     = "uiautomator dump /dev/tty"
	PrologMarker    = "<?xml"
	FragmentPattern = `(?s)<\?xml.*`
)

// DefaultNoise lists benign notices the dump tool mixes into its output.
// "hierchary" is the tool's own spelling.
var DefaultNoise = []string{
	"UI hierchary dumped to: /dev/tty",
	"Events injected: 1",
}

// CaptureConfig configures how a snapshot is obtained and sanitized.
type CaptureConfig struct {
	Command         string   // Dump command (default: uiautomator dump /dev/tty)
	Noise           []string // Substrings removed from the output before inspection
	FragmentPattern string   // Regexp locating an embedded XML fragment
}

// DefaultCaptureConfig returns the UIAutomator defaults.
func DefaultCaptureConfig() CaptureConfig {
	noise := make([]string, len(DefaultNoise))
	copy(noise, DefaultNoise)
	return CaptureConfig{
		Command:         DumpCommand,
		Noise:           noise,
		FragmentPattern: FragmentPattern,
	}
}

// Capturer issues the hierarchy dump command and sanitizes its output.
type Capturer struct {
	channel  device.CommandChannel
	serial   string
	command  string
	noise    []string
	fragment *regexp.Regexp
}

// NewCapturer creates a Capturer. Empty fields in cfg fall back to defaults;
// an empty Noise list is kept as is.
func NewCapturer(ch device.CommandChannel, serial string, cfg CaptureConfig) (*Capturer, error) {
	if cfg.Command == "" {
		cfg.Command = DumpCommand
	}
	if cfg.FragmentPattern == "" {
		cfg.FragmentPattern = FragmentPattern
	}
	re, err := regexp.Compile(cfg.FragmentPattern)
	if err != nil {
		return nil, core.ErrInvalidConfig.
			WithMessage(fmt.Sprintf("invalid fragment pattern %q", cfg.FragmentPattern)).
			WithCause(err)
	}
	return &Capturer{
		channel:  ch,
		serial:   serial,
		command:  cfg.Command,
		noise:    cfg.Noise,
		fragment: re,
	}, nil
}

// Capture runs the dump and returns the sanitized snapshot.
// An empty string with a nil error means the device produced no output.
// Transport faults from the channel are returned unchanged.
func (c *Capturer) Capture() (string, error) {
	out, err := device.Run(c.channel, c.serial, c.command)
	if err != nil {
		return "", err
	}
	return c.Sanitize(out)
}

// Sanitize strips noise and extracts the XML document from raw dump output.
func (c *Capturer) Sanitize(raw string) (string, error) {
	text := raw
	for _, n := range c.noise {
		if n != "" {
			text = strings.ReplaceAll(text, n, "")
		}
	}
	text = strings.TrimSpace(text)

	if text == "" {
		return "", nil
	}
	if strings.HasPrefix(text, PrologMarker) {
		return text, nil
	}
	if frag := c.fragment.FindString(text); frag != "" {
		return strings.TrimSpace(frag), nil
	}

	return "", core.ErrCaptureFailed.WithDetails(map[string]interface{}{
		"output": preview(text, 200),
	})
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
