package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-stdlog/stdlog"
	"github.com/spf13/cobra"

	"github.com/heyvito/lazycoder"
	"github.com/heyvito/lazycoder/metrics"
)

const configDirEnv = "LAZYCODER_CONFIG_DIR"

var levels = []string{"error", "warn", "info", "debug", "trace"}

type app struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	level     string
	configDir string

	store lazycoder.Store
}

// run executes the command line in args and returns the process exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, getenv: os.Getenv}
	defer metrics.InstallDelegate(nil)
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		printError(a.stderr, err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lazycoder",
		Short: "Hand out snippets from a file, one at a time",
		Long: `lazycoder keeps a cursor over a file of snippets separated by a line
containing only "---" followed by a blank line. Each call to next prints the
snippet under the cursor and moves it forward, so snippets can be typed or
pasted in order during a live demo.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.level, "level", "l", "warn", "verbosity level (error, warn, info, debug, trace)")
	flags.StringVar(&a.configDir, "config-dir", "", "directory holding lazycoder.toml (default: per-user configuration directory, or $"+configDirEnv+")")

	root.AddCommand(
		a.startCommand(),
		a.nextCommand(),
		a.peekCommand(),
		a.forwardCommand(),
		a.rewindCommand(),
		a.statusCommand(),
	)
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	logger, err := a.logger()
	if err != nil {
		return err
	}
	if a.level == "trace" {
		metrics.InstallDelegate(newTraceDelegates(logger))
	}

	config := lazycoder.Config{Logger: logger}
	dir := a.configDir
	if dir == "" {
		dir = a.getenv(configDirEnv)
	}
	if dir != "" {
		config.ConfigDir = lazycoder.StaticConfigDir(dir)
	}
	a.store = lazycoder.New(config)
	return nil
}

func (a *app) logger() (stdlog.Logger, error) {
	switch a.level {
	case "error", "warn":
		return stdlog.Discard, nil
	case "info":
		log := stdlog.NewStd(a.stderr)
		log.SetLevel(stdlog.LevelDebug)
		return withoutDebug{log}, nil
	case "debug", "trace":
		log := stdlog.NewStd(a.stderr)
		log.SetLevel(stdlog.LevelDebug)
		return log, nil
	default:
		return nil, fmt.Errorf("invalid level %q: must be one of %v", a.level, levels)
	}
}

// withoutDebug drops Debug entries. stdlog only emits Info entries while set
// to LevelDebug, so the info verbosity filters Debug out here instead.
type withoutDebug struct {
	stdlog.Logger
}

func (withoutDebug) Debug(string, ...any) {}

func (w withoutDebug) Named(name string) stdlog.Logger {
	return withoutDebug{w.Logger.Named(name)}
}

// parseCount returns the optional count argument of forward and rewind,
// defaulting to one.
func parseCount(args []string) (uint64, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: must be a non-negative integer", args[0])
	}
	return n, nil
}
