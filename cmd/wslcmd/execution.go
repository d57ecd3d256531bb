package main

import (
	"context"
	"io"

	"github.com/snoopy3476/wslcmd"
)

// exitChildSignaled is used when the child terminated by signal or
// otherwise produced no exit code, per spec.md §4.4's exit-mapping table.
const exitChildSignaled = 1

// runExecution is the ExecutionFrontend: decode the invocation name with
// NameCodec, translate the remaining argv with ArgTranslator, build an
// Invocation, run it through invoker, and propagate its exit status, per
// spec.md §4.6. invoker is accepted as a parameter (rather than
// constructed here) so tests can point it at a stand-in "wsl" binary.
func runExecution(ctx context.Context, invoker *wslcmd.WslInvoker, invocationName string, stdin io.Reader, stdout, stderr io.Writer, args []string, env map[string]string, debug *DebugLogger) int {
	parsed, ok := wslcmd.Decode(invocationName)
	debug.ParsedName(invocationName, parsed, ok)

	if !ok {
		fprintln(stderr, "wslcmd: cannot parse invocation name:", invocationName)

		return exitInternalError
	}

	convertPaths := !envFlagSet(env, "WSLCMD_NO_ARGCONV")
	translated := wslcmd.Translate(args, convertPaths)
	debug.TranslatedArgs(args, translated, convertPaths)

	var envfiles []string
	if extra, ok := env["WSLCMD_ENVFILE"]; ok && extra != "" {
		envfiles = append(envfiles, extra)
	}

	inv := &wslcmd.Invocation{
		Command:  parsed.Command,
		Args:     translated,
		User:     parsed.User,
		Dist:     parsed.Dist,
		Envfiles: envfiles,
		Detached: parsed.Detached,
	}

	debug.ChildCommand(wslcmd.ChildCommandLine(invoker, inv))

	// stdin == nil selects inherited stdio, the mode main.go wires up for
	// real interactive invocations; a non-nil reader selects piped mode
	// and is read to completion before spawn, even if it yields zero
	// bytes, per WslInvoker.Run's contract. There is no CLI flag that
	// drives piped mode today — it exists for embedding wslcmd as a
	// library and for tests that need to assert on captured output.
	var stdinBytes []byte

	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fprintln(stderr, "wslcmd: reading stdin:", err)

			return exitInternalError
		}

		stdinBytes = data
	}

	status, err := invoker.Run(ctx, inv, stdinBytes)
	if err != nil {
		fprintln(stderr, "wslcmd:", err)

		return exitInternalError
	}

	if len(status.Stdout) > 0 {
		_, _ = stdout.Write(status.Stdout)
	}

	if len(status.Stderr) > 0 {
		_, _ = stderr.Write(status.Stderr)
	}

	if status.Code != nil {
		return *status.Code
	}

	return exitChildSignaled
}
