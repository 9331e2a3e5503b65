// Package automation drives a remote Android device through a text command
// channel: it locates elements in hierarchy dumps, issues input gestures and
// classifies their console output.
package automation

import (
	"strings"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/device"
	"github.com/devicelab-dev/uiprobe/pkg/hierarchy"
	"github.com/devicelab-dev/uiprobe/pkg/outcome"
)

// DefaultPollInterval is the wait between locator attempts.
const DefaultPollInterval = 100 * time.Millisecond

// Client automates one device. It holds no mutable state after construction;
// concurrent use is as safe as the underlying channel.
type Client struct {
	channel    device.CommandChannel
	serial     string
	capturer   *hierarchy.Capturer
	classifier outcome.Classifier
	newBackOff func() backoff.BackOff
}

type options struct {
	capture    hierarchy.CaptureConfig
	classifier outcome.Classifier
	newBackOff func() backoff.BackOff
}

// Option configures a Client.
type Option func(*options)

// WithCaptureConfig overrides the dump command, noise list and fragment pattern.
func WithCaptureConfig(cfg hierarchy.CaptureConfig) Option {
	return func(o *options) { o.capture = cfg }
}

// WithClassifier overrides the console outcome markers.
func WithClassifier(c outcome.Classifier) Option {
	return func(o *options) { o.classifier = c }
}

// WithBackOff sets the wait policy between locator attempts. The factory is
// called once per locator call.
func WithBackOff(factory func() backoff.BackOff) Option {
	return func(o *options) { o.newBackOff = factory }
}

// WithPollInterval waits a constant interval between attempts; zero busy-polls.
func WithPollInterval(d time.Duration) Option {
	return WithBackOff(ConstantPolling(d))
}

// New creates a Client for the device identified by serial. Validation
// happens here, before any command is issued.
func New(ch device.CommandChannel, serial string, opts ...Option) (*Client, error) {
	if ch == nil {
		return nil, core.ErrNilChannel
	}
	if strings.TrimSpace(serial) == "" {
		return nil, core.ErrInvalidDevice
	}

	o := options{
		capture:    hierarchy.DefaultCaptureConfig(),
		classifier: outcome.Default(),
		newBackOff: ConstantPolling(DefaultPollInterval),
	}
	for _, opt := range opts {
		opt(&o)
	}

	capturer, err := hierarchy.NewCapturer(ch, serial, o.capture)
	if err != nil {
		return nil, err
	}

	return &Client{
		channel:    ch,
		serial:     serial,
		capturer:   capturer,
		classifier: o.classifier,
		newBackOff: o.newBackOff,
	}, nil
}

// Serial returns the device the client is bound to.
func (c *Client) Serial() string {
	return c.serial
}

// DumpScreen captures one sanitized snapshot. Unlike the locator, it surfaces
// core.ErrCaptureFailed. An empty string means the device returned nothing.
func (c *Client) DumpScreen() (string, error) {
	return c.capturer.Capture()
}

// Hierarchy captures and parses one snapshot.
func (c *Client) Hierarchy() (*hierarchy.Tree, error) {
	snap, err := c.capturer.Capture()
	if err != nil {
		return nil, err
	}
	return hierarchy.Parse(snap)
}

// shell runs command and returns its console text.
func (c *Client) shell(command string) (string, error) {
	return device.Run(c.channel, c.serial, command)
}
