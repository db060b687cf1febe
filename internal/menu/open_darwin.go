//go:build darwin
// +build darwin

package menu

import "os/exec"

func launchTarget(raw string) {
	_ = exec.Command("open", raw).Start()
}
