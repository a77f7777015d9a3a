package util

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenPath hands a file, folder or URL to the platform launcher.
func OpenPath(target string) error {
	var cmdName string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmdName = "open"
		args = []string{target}
	case "windows":
		cmdName = "cmd"
		args = []string{"/c", "start", "", target}
	default: // linux, freebsd, etc.
		cmdName = "xdg-open"
		args = []string{target}
	}

	c := exec.Command(cmdName, args...)
	if err := c.Start(); err != nil {
		return fmt.Errorf("opening %q with %q: %w", target, cmdName, err)
	}
	return nil
}
