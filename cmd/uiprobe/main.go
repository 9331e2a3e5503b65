package main

import "github.com/devicelab-dev/uiprobe/pkg/cli"

func main() {
	cli.Execute()
}
