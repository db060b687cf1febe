package menu

import (
	"context"
	"log"
	"os/exec"
	"strings"

	"github.com/example/screenaccess/internal/config"
	"github.com/example/screenaccess/internal/logging"
)

// runAction starts the configured command against the captured file.
// Actions run detached; their exit status is not collected.
func runAction(ctx context.Context, action config.Action, target string) {
	if action.Command == "" {
		return
	}

	args := commandArgs(action.Arguments, target)
	logging.Debugf("running action %q: %s %v", action.Label, action.Command, args)

	cmd := exec.CommandContext(ctx, action.Command, args...)
	if action.WorkingDir != "" {
		cmd.Dir = action.WorkingDir
	}
	if err := cmd.Start(); err != nil {
		log.Printf("action %q failed to start: %v", action.Label, err)
	}
}

// commandArgs expands the {file} placeholder in configured arguments.
// When no argument references it, the captured path is appended.
func commandArgs(args []string, target string) []string {
	out := make([]string, 0, len(args)+1)
	replaced := false
	for _, arg := range args {
		if strings.Contains(arg, "{file}") {
			arg = strings.ReplaceAll(arg, "{file}", target)
			replaced = true
		}
		out = append(out, arg)
	}
	if !replaced {
		out = append(out, target)
	}
	return out
}
