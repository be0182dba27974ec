// Package browser launches the system web browser
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// linuxOpeners are tried in order on systems without a desktop opener.
var linuxOpeners = []string{
	"xdg-open",
	"x-www-browser",
	"sensible-browser",
	"firefox",
	"chromium-browser",
	"google-chrome",
}

// Open launches the default web browser at the given URL. The child
// process is started and not waited on.
func Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		name := ""
		for _, opener := range linuxOpeners {
			if _, err := exec.LookPath(opener); err == nil {
				name = opener
				break
			}
		}
		if name == "" {
			return fmt.Errorf("no browser found - please open this URL manually:\n%s", url)
		}
		cmd = exec.Command(name, url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform - please open this URL manually:\n%s", url)
	}

	return cmd.Start()
}

// CanOpen reports whether a browser can be opened on this system.
func CanOpen() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	case "linux":
		for _, opener := range linuxOpeners {
			if _, err := exec.LookPath(opener); err == nil {
				return true
			}
		}
		return false
	default:
		return false
	}
}
