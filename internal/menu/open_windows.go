//go:build windows
// +build windows

package menu

import "os/exec"

func launchTarget(raw string) {
	_ = exec.Command("rundll32", "url.dll,FileProtocolHandler", raw).Start()
}
