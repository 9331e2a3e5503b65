package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uiprobe/pkg/automation"
	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/logger"
)

var timeoutFlag = &cli.DurationFlag{
	Name:    "timeout",
	Aliases: []string{"t"},
	Usage:   "How long to keep retrying (default: config timeout, else a single attempt)",
}

var devicesCommand = &cli.Command{
	Name:  "devices",
	Usage: "List devices known to adb",
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}
		defer logger.Close()

		devices, err := s.transport.ListDevices()
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			fmt.Fprintln(c.App.Writer, "No devices found")
			return nil
		}
		green := color.New(color.FgGreen)
		yellow := color.New(color.FgYellow)
		for _, d := range devices {
			state := yellow
			if d.Online() {
				state = green
			}
			fmt.Fprintf(c.App.Writer, "%s\t%s\n", d.Serial, state.Sprint(d.State))
		}
		return nil
	},
}

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "Print the sanitized UI hierarchy of the device",
	Action: withClient(func(c *cli.Context, _ *session, client *automation.Client) error {
		snap, err := client.DumpScreen()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, snap)
		return nil
	}),
}

var findCommand = &cli.Command{
	Name:      "find",
	Usage:     "Locate elements and print them as JSON",
	ArgsUsage: "[query]",
	Description: `Queries are path expressions over the hierarchy dump. Without a
query the top-level nodes are matched.

Examples:
  uiprobe find "//node[@text='Login']"
  uiprobe find "//node[@clickable='true']" --all --timeout 3s`,
	Flags: []cli.Flag{
		timeoutFlag,
		&cli.BoolFlag{
			Name:  "all",
			Usage: "Print every match instead of the first",
		},
	},
	Action: withClient(func(c *cli.Context, s *session, client *automation.Client) error {
		query := c.Args().First()
		timeout := resolveTimeout(c, s)

		var result interface{}
		if c.Bool("all") {
			elements, err := client.FindAll(query, timeout)
			if err != nil {
				return err
			}
			result = elements
		} else {
			el, err := client.FindOne(query, timeout)
			if err != nil {
				return err
			}
			result = el
		}
		return printJSON(c, result)
	}),
}

var tapCommand = &cli.Command{
	Name:      "tap",
	Usage:     "Tap a coordinate or the center of a located element",
	ArgsUsage: "<x> <y>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "Tap the first element matching the query instead of a coordinate",
		},
		timeoutFlag,
	},
	Action: withClient(func(c *cli.Context, s *session, client *automation.Client) error {
		if c.IsSet("query") {
			el, err := client.FindOne(c.String("query"), resolveTimeout(c, s))
			if err != nil {
				return err
			}
			if err := client.TapElement(*el); err != nil {
				return err
			}
			printSuccess(c, fmt.Sprintf("Tapped (%d, %d)", el.X, el.Y))
			return nil
		}

		coords, err := intArgs(c, 2)
		if err != nil {
			return err
		}
		if err := client.Tap(coords[0], coords[1]); err != nil {
			return err
		}
		printSuccess(c, fmt.Sprintf("Tapped (%d, %d)", coords[0], coords[1]))
		return nil
	}),
}

var swipeCommand = &cli.Command{
	Name:      "swipe",
	Usage:     "Swipe between two coordinates",
	ArgsUsage: "<x1> <y1> <x2> <y2>",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "duration",
			Usage: "Swipe duration",
			Value: automation.DefaultSwipeDuration,
		},
	},
	Action: withClient(func(c *cli.Context, _ *session, client *automation.Client) error {
		coords, err := intArgs(c, 4)
		if err != nil {
			return err
		}
		if err := client.Swipe(coords[0], coords[1], coords[2], coords[3], c.Duration("duration")); err != nil {
			return err
		}
		printSuccess(c, fmt.Sprintf("Swiped (%d, %d) -> (%d, %d)", coords[0], coords[1], coords[2], coords[3]))
		return nil
	}),
}

var keyCommand = &cli.Command{
	Name:      "key",
	Usage:     "Send a key event (KEYCODE_*, a number, or a name like home/back/enter)",
	ArgsUsage: "<key>",
	Action: withClient(func(c *cli.Context, _ *session, client *automation.Client) error {
		if err := client.KeyEvent(c.Args().First()); err != nil {
			return err
		}
		printSuccess(c, "Sent "+automation.KeyCode(c.Args().First()))
		return nil
	}),
}

var textCommand = &cli.Command{
	Name:      "text",
	Usage:     "Type text into the focused field",
	ArgsUsage: "<text>",
	Action: withClient(func(c *cli.Context, _ *session, client *automation.Client) error {
		if c.NArg() != 1 {
			return fmt.Errorf("expected exactly one text argument")
		}
		if err := client.InputText(c.Args().First()); err != nil {
			return err
		}
		printSuccess(c, "Text entered")
		return nil
	}),
}

var startCommand = &cli.Command{
	Name:      "start",
	Usage:     "Launch an application",
	ArgsUsage: "<package>",
	Action: withClient(func(c *cli.Context, _ *session, client *automation.Client) error {
		pkg := c.Args().First()
		if err := client.StartApp(pkg); err != nil {
			return err
		}
		printSuccess(c, "Started "+pkg)
		return nil
	}),
}

var stopCommand = &cli.Command{
	Name:      "stop",
	Usage:     "Force-stop an application",
	ArgsUsage: "<package>",
	Action: withClient(func(c *cli.Context, _ *session, client *automation.Client) error {
		pkg := c.Args().First()
		if err := client.StopApp(pkg); err != nil {
			return err
		}
		printSuccess(c, "Stopped "+pkg)
		return nil
	}),
}

var statusCommand = &cli.Command{
	Name:      "status",
	Usage:     "Report whether an application is stopped, in the background or in the foreground",
	ArgsUsage: "<package>",
	Action: withClient(func(c *cli.Context, _ *session, client *automation.Client) error {
		status, err := client.Status(c.Args().First())
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, statusColor(status).Sprint(status))
		return nil
	}),
}

func resolveTimeout(c *cli.Context, s *session) time.Duration {
	if c.IsSet("timeout") {
		return c.Duration("timeout")
	}
	return s.cfg.Timeout
}

func intArgs(c *cli.Context, n int) ([]int, error) {
	if c.NArg() != n {
		return nil, core.ErrInvalidTarget.WithMessage(fmt.Sprintf("expected %d coordinates, got %d", n, c.NArg()))
	}
	values := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(c.Args().Get(i))
		if err != nil {
			return nil, core.ErrInvalidTarget.WithMessage(fmt.Sprintf("invalid coordinate %q", c.Args().Get(i)))
		}
		values[i] = v
	}
	return values, nil
}

func printJSON(c *cli.Context, v interface{}) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSuccess(c *cli.Context, msg string) {
	fmt.Fprintf(c.App.Writer, "%s %s\n", color.GreenString("✓"), msg)
}

func statusColor(s core.AppStatus) *color.Color {
	switch s {
	case core.AppForeground:
		return color.New(color.FgGreen)
	case core.AppBackground:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Faint)
	}
}
