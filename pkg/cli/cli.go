// Package cli provides the command-line interface for uiprobe.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"s"},
		Usage:   "Serial of the target device (default: first online device)",
		EnvVars: []string{"UIPROBE_DEVICE"},
	},
	&cli.StringFlag{
		Name:    "adb",
		Usage:   "Path to the adb binary (default: PATH lookup)",
		EnvVars: []string{"UIPROBE_ADB"},
	},
	&cli.StringFlag{
		Name:  "config",
		Usage: "Config file (default: config.yaml in the working directory)",
	},
	&cli.StringFlag{
		Name:  "env-file",
		Usage: "Dotenv file to load before reading the environment (default: .env)",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"UIPROBE_VERBOSE"},
	},
	&cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable ANSI colors",
	},
}

// NewApp builds the uiprobe application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "uiprobe",
		Usage:   "Locate UI elements and drive input on an Android device over adb",
		Version: Version,
		Description: `uiprobe captures the UI hierarchy of a connected Android device,
finds elements with path queries and issues taps, swipes, key events and text.

Examples:
  uiprobe devices
  uiprobe find "//node[@text='Login']" --timeout 5s
  uiprobe tap --query "//node[@resource-id='com.example:id/ok']"
  uiprobe -s emulator-5554 status com.example.app`,
		Flags: GlobalFlags,
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			devicesCommand,
			dumpCommand,
			findCommand,
			tapCommand,
			swipeCommand,
			keyCommand,
			textCommand,
			startCommand,
			stopCommand,
			statusCommand,
		},
	}
}

// Execute runs the CLI.
func Execute() {
	app := NewApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
