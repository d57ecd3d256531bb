//go:build windows

package wslcmd

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// setDetachedCreationFlags marks cmd so its child is spawned without a
// console window, per spec.md §4.4's detached-mode requirement. This is
// the one real Win32 surface the launcher touches.
func setDetachedCreationFlags(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}

	cmd.SysProcAttr.CreationFlags |= windows.CREATE_NO_WINDOW
}
