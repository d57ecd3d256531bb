package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/snoopy3476/wslcmd"
)

const (
	// exitInternalError is returned for unknown verbs, name-parse failures,
	// and failures to resolve the running image, per spec.md §6.
	exitInternalError = -1

	// exitRegistryError is returned when the registry cannot be
	// constructed at all, per spec.md §6.
	exitRegistryError = 1
)

// Run is the process entry point, isolated from global state (stdin/
// stdout/stderr/env/args) so it can be driven directly from tests. It
// implements the ModeDispatcher state machine from spec.md §4.6: resolve
// the running image and the invocation name, then route to the management
// or execution frontend.
func Run(stdin io.Reader, stdout, stderr io.Writer, args []string, env map[string]string) int {
	if len(args) == 0 {
		fprintError(stderr, errors.New("no argv[0]"))

		return exitInternalError
	}

	exePath, err := os.Executable()
	if err != nil {
		fprintError(stderr, fmt.Errorf("resolving current executable: %w", err))

		return exitInternalError
	}

	runningImage, ok := wslcmd.Canonicalize(exePath)
	if !ok {
		fprintError(stderr, fmt.Errorf("resolving running image: %s", exePath))

		return exitInternalError
	}

	invocationName := wslcmd.Filename(args[0])
	management := wslcmd.Basename(runningImage) == wslcmd.Basename(invocationName)

	// In execution mode the rest of argv goes to the wrapped command as is,
	// so --debug is only recognized in management mode.
	rest := args[1:]
	debugEnabled := false

	if management {
		rest, debugEnabled = extractDebugFlag(rest)
	}

	var debug *DebugLogger
	if debugEnabled {
		debug = NewDebugLogger(stderr)
	}

	debug.Dispatch(runningImage, invocationName, management)

	if management {
		registry, ok := wslcmd.NewLinkRegistry(runningImage)
		if !ok {
			fprintError(stderr, fmt.Errorf("failed to construct registry for %s", runningImage))

			return exitRegistryError
		}

		return runManagement(registry, stdout, stderr, rest, debug)
	}

	invoker := &wslcmd.WslInvoker{}

	return runExecution(context.Background(), invoker, invocationName, stdin, stdout, stderr, rest, env, debug)
}

// extractDebugFlag removes the first "--debug" token from args, per
// SPEC_FULL.md's top-level --debug flag, and reports whether it was
// present. Run applies it to management-mode argv only; execution-mode
// argv belongs to the wrapped Linux command and is passed on unchanged.
func extractDebugFlag(args []string) ([]string, bool) {
	for i, a := range args {
		if a == "--debug" {
			rest := make([]string, 0, len(args)-1)
			rest = append(rest, args[:i]...)
			rest = append(rest, args[i+1:]...)

			return rest, true
		}
	}

	return args, false
}

func formatVersion() string {
	if version == "source" {
		return fmt.Sprintf("wslcmd (built from source, %s)", date)
	}

	return fmt.Sprintf("wslcmd %s (%s, %s)", version, commit, date)
}

func envFlagSet(env map[string]string, key string) bool {
	v, ok := env[key]

	return ok && v != ""
}

func fprintln(out io.Writer, a ...any) {
	_, _ = fmt.Fprintln(out, a...)
}

func fprintf(out io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(out, format, a...)
}

func fprintError(out io.Writer, err error) {
	if isTerminal() {
		fprintln(out, "\033[31mwslcmd: error:\033[0m", err)
	} else {
		fprintln(out, "wslcmd: error:", err)
	}
}

func isTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}

// newFlagSet returns a pflag.FlagSet configured for the management verbs'
// flag parsing (runAdd): no built-in usage printing, interspersed flags
// disabled so flag parsing stops at the first operand.
func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.Usage = func() {}

	return flags
}
