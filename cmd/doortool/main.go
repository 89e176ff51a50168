// Door type authoring tool: inspects, validates, previews and syncs door
// type assets.
//
// Usage:
//
//	go run ./cmd/doortool list                  # print the catalog with colour swatches
//	go run ./cmd/doortool validate              # strict range check of every asset
//	go run ./cmd/doortool preview -o doors.png  # debug draw sheet
//	go run ./cmd/doortool import                # push assets to PostgreSQL
//	go run ./cmd/doortool export > doors.yaml   # dump PostgreSQL door types as YAML
//	go run ./cmd/doortool --list                # list available commands
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/udisondev/procdungeon/internal/config"
)

const ConfigPath = "config/procdungeon.yaml"

// env is what every command gets: loaded settings and where to print.
type env struct {
	cfg config.Settings
	out io.Writer
}

type command struct {
	name string
	desc string
	run  func(ctx context.Context, e *env, args []string) error
}

var commands []command

func registerCommand(name, desc string, fn func(ctx context.Context, e *env, args []string) error) {
	commands = append(commands, command{name: name, desc: desc, run: fn})
}

func init() {
	registerCommand("list", "Print door types with colour swatches", runList)
	registerCommand("validate", "Check every asset against its field constraints", runValidate)
	registerCommand("preview", "Render door bounds to a PNG sheet", runPreview)
	registerCommand("import", "Upsert all assets into PostgreSQL", runImport)
	registerCommand("export", "Write PostgreSQL door types as YAML to stdout", runExport)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	if args[0] == "--list" {
		printList(os.Stdout)
		return
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printList(os.Stderr)
		os.Exit(1)
	}

	if err := run(ctx, cmd, args[1:]); err != nil {
		slog.Error("fatal", "command", cmd.name, "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd command, args []string) error {
	cfgPath := ConfigPath
	if p := os.Getenv("PROCDUNGEON_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout is reserved for command output (export pipes YAML)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", cfgPath, "assets", cfg.Assets.Dir, "validation", cfg.Assets.Validation)

	return cmd.run(ctx, &env{cfg: cfg, out: os.Stdout}, args)
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: doortool <command> [flags]")
	fmt.Fprintln(os.Stderr, "       doortool --list")
}

func printList(w io.Writer) {
	names := make([]string, 0, len(commands))
	maxLen := 0
	for _, c := range commands {
		names = append(names, c.name)
		maxLen = max(maxLen, len(c.name))
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Available commands:")
	for _, name := range names {
		c, _ := lookupCommand(name)
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		fmt.Fprintf(w, "  %s%s%s\n", name, padding, c.desc)
	}
}
