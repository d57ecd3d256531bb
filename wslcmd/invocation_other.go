//go:build !windows

package wslcmd

import "os/exec"

// setDetachedCreationFlags is a no-op outside Windows: there is no console
// window to suppress, and cmd.SysProcAttr's shape is platform-specific.
func setDetachedCreationFlags(cmd *exec.Cmd) {}
