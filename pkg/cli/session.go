package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uiprobe/pkg/automation"
	"github.com/devicelab-dev/uiprobe/pkg/config"
	"github.com/devicelab-dev/uiprobe/pkg/device"
	"github.com/devicelab-dev/uiprobe/pkg/logger"
)

// Transport is a command channel that can also enumerate devices.
type Transport interface {
	device.CommandChannel
	ListDevices() ([]device.DeviceInfo, error)
}

// openTransport creates the transport for an adb path. Replaced in tests.
var openTransport = func(adbPath string) (Transport, error) {
	return device.NewADB(adbPath)
}

// session is the per-invocation setup shared by all commands.
type session struct {
	cfg       *config.Config
	transport Transport
}

func newSession(c *cli.Context) (*session, error) {
	if err := config.LoadEnv(c.String("env-file")); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.LogPath()); err != nil {
		return nil, err
	}
	logger.SetVerbose(c.Bool("verbose"))
	logger.Info("uiprobe %s: %s", Version, c.Command.Name)

	adbPath := c.String("adb")
	if adbPath == "" {
		adbPath = cfg.ADBPath
	}
	transport, err := openTransport(adbPath)
	if err != nil {
		logger.Error("Failed to open adb: %v", err)
		return nil, err
	}

	return &session{cfg: cfg, transport: transport}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromDir(".")
}

// resolveSerial picks the device: --device, then $UIPROBE_DEVICE (which may
// come from the env file), then config, then the first online device.
func (s *session) resolveSerial(c *cli.Context) (string, error) {
	if serial := c.String("device"); serial != "" {
		return serial, nil
	}
	if serial := os.Getenv("UIPROBE_DEVICE"); serial != "" {
		return serial, nil
	}
	if s.cfg.Device != "" {
		return s.cfg.Device, nil
	}

	devices, err := s.transport.ListDevices()
	if err != nil {
		return "", err
	}
	for _, d := range devices {
		if d.Online() {
			logger.Info("Auto-detected device: %s", d.Serial)
			return d.Serial, nil
		}
	}
	return "", fmt.Errorf("no connected devices found")
}

// client builds an automation client bound to the resolved device.
func (s *session) client(c *cli.Context) (*automation.Client, error) {
	serial, err := s.resolveSerial(c)
	if err != nil {
		return nil, err
	}
	opts, err := s.cfg.ClientOptions()
	if err != nil {
		return nil, err
	}
	logger.WithFields(map[string]interface{}{
		"serial":   serial,
		"strategy": s.cfg.Poll.Strategy,
		"timeout":  s.cfg.Timeout.String(),
	}, "creating client")
	return automation.New(s.transport, serial, opts...)
}

// withClient runs fn with a ready client and closes the log afterwards.
func withClient(fn func(c *cli.Context, s *session, client *automation.Client) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}
		defer logger.Close()

		client, err := s.client(c)
		if err != nil {
			logger.Error("Failed to create client: %v", err)
			return err
		}
		if err := fn(c, s, client); err != nil {
			logger.Error("%s failed: %v", c.Command.Name, err)
			return err
		}
		return nil
	}
}
