package main

import (
	"fmt"
	"io"

	"github.com/snoopy3476/wslcmd"
)

// DebugLogger provides structured debug output for dispatch, name parsing,
// and child invocation. It is disabled by default (when output is nil) and
// all methods become no-ops.
type DebugLogger struct {
	output io.Writer
}

// NewDebugLogger creates a new debug logger. If output is nil the logger
// is disabled.
func NewDebugLogger(output io.Writer) *DebugLogger {
	return &DebugLogger{output: output}
}

// Enabled returns true if debug logging is enabled.
func (d *DebugLogger) Enabled() bool {
	return d != nil && d.output != nil
}

func (d *DebugLogger) logf(format string, args ...any) {
	if !d.Enabled() {
		return
	}

	_, _ = fmt.Fprintf(d.output, format+"\n", args...)
}

// Dispatch records the mode decision made by ModeDispatcher.
func (d *DebugLogger) Dispatch(runningImage, invocationName string, management bool) {
	mode := "execution"
	if management {
		mode = "management"
	}

	d.logf("dispatch: running_image=%s invocation_name=%s mode=%s", runningImage, invocationName, mode)
}

// ParsedName records the outcome of NameCodec.Decode.
func (d *DebugLogger) ParsedName(visibleName string, parsed wslcmd.ParsedName, ok bool) {
	if !ok {
		d.logf("parse: %s -> decode failed", visibleName)

		return
	}

	d.logf("parse: %s -> command=%q user=%q dist=%q detached=%t",
		visibleName, parsed.Command, parsed.User, parsed.Dist, parsed.Detached)
}

// TranslatedArgs records ArgTranslator's input/output pair.
func (d *DebugLogger) TranslatedArgs(in, out []string, converted bool) {
	if !converted {
		d.logf("argtranslate: disabled (WSLCMD_NO_ARGCONV set); args unchanged: %v", in)

		return
	}

	d.logf("argtranslate: %v -> %v", in, out)
}

// ChildCommand records the full child command line before spawn.
func (d *DebugLogger) ChildCommand(line string) {
	d.logf("child: %s", line)
}

// RegistryOp records a LinkRegistry add/remove/list outcome.
func (d *DebugLogger) RegistryOp(op, name string, err error) {
	if err != nil {
		d.logf("registry: %s %s -> error: %v", op, name, err)

		return
	}

	d.logf("registry: %s %s -> ok", op, name)
}
