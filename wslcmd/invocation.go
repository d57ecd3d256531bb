package wslcmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Invocation describes a single WSL child process launch, per spec.md §3.
type Invocation struct {
	Command  string
	Args     []string
	User     string // "" if absent
	Dist     string // "" if absent
	Envfiles []string
	Detached bool
}

// builtinEnvfiles are the two shell files always sourced before a
// user-supplied envfile, in order, per spec.md §4.4.
var builtinEnvfiles = []string{"/etc/profile", "$HOME/.profile"}

// Status is the result of running an Invocation, per spec.md §4.4's exit
// mapping table. Code is absent (Code == nil) when the child terminated
// by signal or otherwise produced no exit code.
type Status struct {
	Success bool
	Code    *int
	Stdout  []byte // only populated in piped-stdin mode
	Stderr  []byte // only populated in piped-stdin mode
}

// WslInvoker builds and runs "wsl ..." child processes for an Invocation.
// The zero value is ready to use; Binary defaults to "wsl" when empty,
// letting tests point it at a stand-in executable.
type WslInvoker struct {
	// Binary overrides the child executable name/path. Empty means "wsl".
	Binary string
}

// wslBinary returns the configured binary name, defaulting to "wsl".
func (w *WslInvoker) wslBinary() string {
	if w == nil || w.Binary == "" {
		return "wsl"
	}

	return w.Binary
}

// Argv builds the full "wsl ..." argument vector for inv, per spec.md
// §4.4/§6, not including the binary name itself (argv[0]).
func Argv(inv *Invocation) []string {
	args := make([]string, 0, 8+len(inv.Args))

	if inv.User != "" {
		args = append(args, "-u", inv.User)
	}

	if inv.Dist != "" {
		args = append(args, "-d", inv.Dist)
	}

	args = append(args, "--")
	args = append(args, EnvPrelude(inv.Envfiles)...)
	args = append(args, inv.Command)
	args = append(args, inv.Args...)

	return args
}

// EnvPrelude returns the "if test -r <f> ; then . <f> ; fi;" clauses for
// the two built-in envfiles followed by any extra envfiles, as individual
// whitespace-split tokens ready to append to a "wsl --" argv. Order is
// preserved per spec.md §5.
func EnvPrelude(extra []string) []string {
	files := make([]string, 0, len(builtinEnvfiles)+len(extra))
	files = append(files, builtinEnvfiles...)
	files = append(files, extra...)

	tokens := make([]string, 0, len(files)*9)

	for _, f := range files {
		tokens = append(tokens,
			"if", "test", "-r", f, ";", "then", ".", f, ";", "fi;")
	}

	return tokens
}

// Run executes inv. Stdin, stdout, and stderr inherit the parent's
// streams unless stdin is non-nil, in which case all three streams are
// piped: stdin's bytes are written to the child and its complete stdout
// and stderr are captured, per spec.md §4.4.
//
// Run never returns a Go error for a child failure — failures are
// reported through the returned Status, per spec.md §4.4/§7. A non-nil
// error indicates Run itself could not attempt the invocation (e.g. a nil
// Invocation).
func (w *WslInvoker) Run(ctx context.Context, inv *Invocation, stdin []byte) (Status, error) {
	if inv == nil {
		return Status{}, errors.New("wslcmd: nil invocation")
	}

	if inv.Detached {
		return w.runDetached(ctx, inv)
	}

	return w.runForeground(ctx, inv, stdin)
}

// runDetached starts the child with the window-suppression creation flag
// and does not wait for it: as soon as spawn succeeds, it returns a
// synthetic success status, per spec.md §4.4.
func (w *WslInvoker) runDetached(ctx context.Context, inv *Invocation) (Status, error) {
	cmd := exec.CommandContext(ctx, w.wslBinary(), Argv(inv)...)
	setDetachedCreationFlags(cmd)

	err := cmd.Start()
	if err != nil {
		code := 0

		return Status{Success: false, Code: &code}, nil
	}

	go func() { _ = cmd.Wait() }()

	code := 0

	return Status{Success: true, Code: &code}, nil
}

// runForeground runs the child to completion, mapping its exit status per
// spec.md §4.4's table.
func (w *WslInvoker) runForeground(ctx context.Context, inv *Invocation, stdin []byte) (Status, error) {
	cmd := exec.CommandContext(ctx, w.wslBinary(), Argv(inv)...)

	piped := stdin != nil

	var stdoutBuf, stderrBuf bytes.Buffer

	if piped {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf

		stdinPipe, err := cmd.StdinPipe()
		if err != nil {
			code := 0

			return Status{Success: false, Code: &code}, nil
		}

		err = cmd.Start()
		if err != nil {
			code := 0

			return Status{Success: false, Code: &code}, nil
		}

		_, writeErr := stdinPipe.Write(stdin)
		closeErr := stdinPipe.Close()

		if writeErr != nil || closeErr != nil {
			_ = cmd.Wait()

			code := 0

			return Status{Success: false, Code: &code}, nil
		}
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		err := cmd.Start()
		if err != nil {
			code := 0

			return Status{Success: false, Code: &code}, nil
		}
	}

	waitErr := cmd.Wait()

	status := Status{}
	if piped {
		status.Stdout = stdoutBuf.Bytes()
		status.Stderr = stderrBuf.Bytes()
	}

	if waitErr == nil {
		zero := 0
		status.Success = true
		status.Code = &zero

		return status, nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			status.Success = false
			status.Code = &code

			return status, nil
		}
	}

	status.Success = false
	status.Code = nil

	return status, nil
}

// ChildCommandLine renders the full argv (binary included) for
// diagnostics, e.g. DebugLogger output.
func ChildCommandLine(w *WslInvoker, inv *Invocation) string {
	argv := append([]string{w.wslBinary()}, Argv(inv)...)

	return joinArgv(argv)
}

func joinArgv(argv []string) string {
	var b []byte

	for i, a := range argv {
		if i > 0 {
			b = append(b, ' ')
		}

		b = append(b, a...)
	}

	return string(b)
}
