package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/example/screenaccess/internal/config"
	"github.com/example/screenaccess/internal/logging"
	"github.com/example/screenaccess/internal/menu"
	"github.com/example/screenaccess/internal/portal"
)

func main() {
	log.SetFlags(0)

	args, debug := parseGlobalFlags(os.Args[1:])
	if debug {
		logging.EnableDebug()
	}

	passphrase := config.ResolvePassphrase()
	if passphrase == "" {
		log.Fatal("SCREENACCESS_SECRET environment variable is required")
	}

	cfg, err := config.Load(passphrase)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if len(args) > 0 {
		if err := handleCLI(cfg, passphrase, args); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	runTrayApp(cfg)
}

func runTrayApp(cfg *config.Config) {
	client, err := portal.NewClient()
	if err != nil {
		log.Fatalf("failed to reach the desktop portal: %v", err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := menu.NewRunner(cfg, client)
	if err := runner.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("tray exited with error: %v", err)
	}
}

func parseGlobalFlags(args []string) ([]string, bool) {
	filtered := make([]string, 0, len(args))
	debug := false
	for _, arg := range args {
		if arg == "-debug" || arg == "--debug" {
			debug = true
			continue
		}
		filtered = append(filtered, arg)
	}
	return filtered, debug
}

func handleCLI(cfg *config.Config, passphrase string, args []string) error {
	command := normalizeCommand(args[0])
	switch command {
	case "screenshot":
		return handleScreenshot(cfg, args[1:])
	case "pick-color", "pickcolor":
		return handlePickColor(args[1:])
	case "add":
		return handleAdd(cfg, passphrase, args[1:])
	case "update":
		return handleUpdate(cfg, passphrase, args[1:])
	case "delete":
		return handleDelete(cfg, passphrase, args[1:])
	case "list":
		return handleList(cfg)
	case "set":
		return handleSet(cfg, passphrase, args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func normalizeCommand(arg string) string {
	trimmed := strings.TrimLeft(arg, "-/")
	return strings.ToLower(trimmed)
}

func handleScreenshot(cfg *config.Config, args []string) error {
	fs := newFlagSet("screenshot")
	interactive := fs.Bool("interactive", cfg.Interactive, "choose area and delay before capturing")
	modal := fs.Bool("modal", false, "make the portal dialog modal")
	open := fs.Bool("open", false, "open the captured file when done")
	timeout := fs.Duration("timeout", 0, "abort the request after this duration")

	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := portal.NewClient()
	if err != nil {
		return fmt.Errorf("reach the desktop portal: %w", err)
	}
	defer client.Close()

	ctx, cancel := requestContext(*timeout)
	defer cancel()

	runner := menu.NewRunner(cfg, client)
	target, err := runner.TakeScreenshot(ctx, portal.ScreenshotOptions{
		Modal:       *modal,
		Interactive: *interactive,
	})
	if err != nil {
		return err
	}

	fmt.Println(target)
	if *open {
		menu.Open(target)
	}
	return nil
}

func handlePickColor(args []string) error {
	fs := newFlagSet("pick-color")
	timeout := fs.Duration("timeout", 0, "abort the request after this duration")

	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := portal.NewClient()
	if err != nil {
		return fmt.Errorf("reach the desktop portal: %w", err)
	}
	defer client.Close()

	ctx, cancel := requestContext(*timeout)
	defer cancel()

	result, err := client.PickColor(ctx, portal.WindowNone, portal.ColorOptions{})
	if err != nil {
		return err
	}

	fmt.Println(menu.FormatRGB(result.RGB()))
	return nil
}

// requestContext binds a portal request to interrupt signals and an
// optional timeout. The portal itself never times out a request.
func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func handleAdd(cfg *config.Config, passphrase string, args []string) error {
	fs := newFlagSet("add")
	label := fs.String("label", "", "display label")
	command := fs.String("command", "", "command run against the captured file")
	argList := fs.String("args", "", "comma-separated command arguments; {file} expands to the capture")
	workDir := fs.String("workdir", "", "working directory for command execution")
	description := fs.String("description", "", "tooltip description")

	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	action := config.Action{
		ID:          uuid.NewString(),
		Label:       *label,
		Command:     *command,
		Arguments:   parseList(*argList),
		WorkingDir:  *workDir,
		Description: *description,
		CreatedUTC:  now,
		UpdatedUTC:  now,
	}

	if err := validateAction(action); err != nil {
		return err
	}

	cfg.Actions = append(cfg.Actions, action)
	if err := config.Save(cfg, passphrase); err != nil {
		return err
	}

	fmt.Printf("Added action %s (%s)\n", action.ID, action.Label)
	return nil
}

func handleUpdate(cfg *config.Config, passphrase string, args []string) error {
	fs := newFlagSet("update")
	id := fs.String("id", "", "identifier of the action to update")
	label := fs.String("label", "", "display label")
	command := fs.String("command", "", "command run against the captured file")
	argList := fs.String("args", "", "comma-separated command arguments")
	workDir := fs.String("workdir", "", "working directory")
	description := fs.String("description", "", "tooltip description")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		return errors.New("missing --id for update")
	}

	idx := -1
	for i, action := range cfg.Actions {
		if action.ID == *id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("action with id %s not found", *id)
	}

	action := cfg.Actions[idx]
	if *label != "" {
		action.Label = *label
	}
	if *command != "" {
		action.Command = *command
	}
	if *argList != "" {
		action.Arguments = parseList(*argList)
	}
	if *workDir != "" {
		action.WorkingDir = *workDir
	}
	if *description != "" {
		action.Description = *description
	}
	action.UpdatedUTC = time.Now().UTC().Format(time.RFC3339)

	if err := validateAction(action); err != nil {
		return err
	}

	cfg.Actions[idx] = action
	if err := config.Save(cfg, passphrase); err != nil {
		return err
	}

	fmt.Printf("Updated action %s\n", action.ID)
	return nil
}

func handleDelete(cfg *config.Config, passphrase string, args []string) error {
	fs := newFlagSet("delete")
	id := fs.String("id", "", "identifier of the action to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		return errors.New("missing --id for delete")
	}

	filtered := cfg.Actions[:0]
	removed := false
	for _, action := range cfg.Actions {
		if action.ID == *id {
			removed = true
			continue
		}
		filtered = append(filtered, action)
	}
	if !removed {
		return fmt.Errorf("action with id %s not found", *id)
	}

	cfg.Actions = append([]config.Action(nil), filtered...)
	if err := config.Save(cfg, passphrase); err != nil {
		return err
	}

	fmt.Printf("Deleted action %s\n", *id)
	return nil
}

func handleList(cfg *config.Config) error {
	if len(cfg.Actions) == 0 {
		fmt.Println("No actions configured")
		return nil
	}

	sort.Slice(cfg.Actions, func(i, j int) bool {
		return cfg.Actions[i].CreatedUTC < cfg.Actions[j].CreatedUTC
	})

	fmt.Printf("%-38s %-20s %-30s %-20s\n", "ID", "Label", "Command", "Updated (UTC)")
	for _, action := range cfg.Actions {
		fmt.Printf("%-38s %-20s %-30s %-20s\n", action.ID, truncate(action.Label, 20), truncate(action.Command, 30), action.UpdatedUTC)
	}
	return nil
}

func handleSet(cfg *config.Config, passphrase string, args []string) error {
	fs := newFlagSet("set")
	saveDir := fs.String("savedir", cfg.SaveDir, "directory receiving screenshot copies")
	interactive := fs.Bool("interactive", cfg.Interactive, "make screenshots interactive by default")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.SaveDir = *saveDir
	cfg.Interactive = *interactive
	if err := config.Save(cfg, passphrase); err != nil {
		return err
	}

	fmt.Println("Settings saved")
	return nil
}

func validateAction(action config.Action) error {
	if action.Label == "" {
		return errors.New("actions require --label")
	}
	if action.Command == "" {
		return errors.New("actions require --command")
	}
	return nil
}

func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	if max <= 3 {
		return value[:max]
	}
	return value[:max-3] + "..."
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	return fs
}
