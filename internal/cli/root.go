// Package cli implements the sir command-line interface.
//
// Each invocation resolves configuration, opens the configured store, loads
// the collection once, runs a single command, and saves the collection once
// if the command changed it. No state outlives the invocation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	logLevel  string
	jsonMode  bool
}

// env carries everything a command needs from outside the core: flags,
// output streams and the clock. It is created per invocation.
type env struct {
	flags  rootFlags
	stdout io.Writer
	stderr io.Writer
	clock  func() time.Time
}

// newRootCmd creates the top-level "sir" command with global flags and all
// subcommands registered.
func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "sir",
		Short: "Track topics to review on a day, week, month schedule",
		Long: `sir keeps a list of topics you want to revisit. A topic is due one day
after it is added; each review pushes the next one further out, first to a
week and then to a month.`,
		// Errors are printed by run with the matching exit code.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)

	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/sir)")
	root.PersistentFlags().StringVar(&e.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/sir)")
	root.PersistentFlags().StringVar(&e.flags.backend, "backend", "", "storage backend: json or sqlite (default from config)")
	root.PersistentFlags().StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	root.PersistentFlags().BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newViewCmd(e))
	root.AddCommand(newAddCmd(e))
	root.AddCommand(newRemoveCmd(e))
	root.AddCommand(newRenameCmd(e))
	root.AddCommand(newReviewCmd(e))

	return root
}

// Execute runs the CLI against the process arguments and exits with the
// resulting code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes one command and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return run(args, &env{stdout: stdout, stderr: stderr, clock: time.Now})
}

func run(args []string, e *env) int {
	root := newRootCmd(e)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}

	fmt.Fprintln(e.stderr, "sir:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code == exitSysError {
			slog.Error("command failed", "error", ee.err)
		}
		return ee.code
	}
	// Anything cobra rejects itself (unknown command, bad flags, wrong
	// argument count) is a usage problem.
	return exitUserError
}

// exitError pairs an error with the exit code it should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}
