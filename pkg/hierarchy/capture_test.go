package hierarchy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/device/mock"
)

func newTestCapturer(t *testing.T, ch *mock.Channel) *Capturer {
	t.Helper()
	c, err := NewCapturer(ch, "emulator-5554", DefaultCaptureConfig())
	require.NoError(t, err)
	return c
}

func TestSanitize(t *testing.T) {
	c := newTestCapturer(t, mock.New())

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"prolog first", sampleHierarchy, sampleHierarchy, false},
		{"trailing noise", sampleHierarchy + "UI hierchary dumped to: /dev/tty\n", sampleHierarchy, false},
		{"leading noise", "Events injected: 1\n" + sampleHierarchy, sampleHierarchy, false},
		{"both notices only", "Events injected: 1\nUI hierchary dumped to: /dev/tty\n", "", false},
		{"whitespace only", "  \n\t", "", false},
		{"embedded fragment", "WARNING: linker: unused DT entry\n" + sampleHierarchy, sampleHierarchy, false},
		{"no xml", "ERROR: could not get idle state.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Sanitize(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, core.ErrCaptureFailed))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapture_UsesDumpCommand(t *testing.T) {
	ch := mock.New().Reply(DumpCommand, sampleHierarchy+"\nUI hierchary dumped to: /dev/tty")
	c := newTestCapturer(t, ch)

	got, err := c.Capture()
	require.NoError(t, err)
	assert.Equal(t, sampleHierarchy, got)
	assert.Equal(t, []string{DumpCommand}, ch.Commands())
}

func TestCapture_TransportFaultPropagates(t *testing.T) {
	ch := mock.New().On(DumpCommand, mock.Response{Err: core.ErrTransport})
	c := newTestCapturer(t, ch)

	_, err := c.Capture()
	assert.True(t, errors.Is(err, core.ErrTransport))
}

func TestNewCapturer_CustomConfig(t *testing.T) {
	ch := mock.New().Reply("cat /sdcard/window_dump.xml", "dump: <root/>")
	c, err := NewCapturer(ch, "serial", CaptureConfig{
		Command:         "cat /sdcard/window_dump.xml",
		Noise:           []string{"dump:"},
		FragmentPattern: `(?s)<root.*`,
	})
	require.NoError(t, err)

	got, err := c.Capture()
	require.NoError(t, err)
	assert.Equal(t, "<root/>", got)
}

func TestNewCapturer_InvalidPattern(t *testing.T) {
	_, err := NewCapturer(mock.New(), "serial", CaptureConfig{FragmentPattern: "(("})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}
