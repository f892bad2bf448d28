package main

import (
	"os"

	"pxrom/cli"
)

func main() {
	os.Exit(cli.Main("makerom", cli.MakeROM))
}
