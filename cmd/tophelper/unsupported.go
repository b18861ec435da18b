//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"tophelper is only supported on Linux: it reads /proc and drives X11 window tools.\n\nIf you are seeing this message, you are attempting to build or run tophelper on an unsupported platform.",
	)
	os.Exit(1)
}
