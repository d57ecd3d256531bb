package wslcmd

import "errors"

// Sentinel error kinds for LinkRegistry and WslInvoker, per the error
// taxonomy in the design notes. Call sites wrap these with fmt.Errorf("%w")
// to attach context; callers use errors.Is to recover the kind.
var (
	// ErrInvalidName is returned when a command name fails NameCodec or
	// collides with the canonical binary or the detached prefix.
	ErrInvalidName = errors.New("invalid command name")

	// ErrAlreadyExists is returned by LinkRegistry.Add when the target
	// visible name is already a registry Entry.
	ErrAlreadyExists = errors.New("entry already exists")

	// ErrNotFound is returned by LinkRegistry.Remove when the target
	// visible name does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrNotAnEntry is returned by LinkRegistry.Remove when the target
	// exists but fails the Entry membership test. Renamed from the
	// source's AlreadyExists reuse per spec.md §7/§9.
	ErrNotAnEntry = errors.New("path exists but is not a wslcmd entry")

	// ErrFilesystemError wraps an underlying symlink/remove/read failure.
	ErrFilesystemError = errors.New("filesystem operation failed")

	// ErrSpawnError names the failure to start the WSL child process.
	// WslInvoker.Run reports that condition through its Status (Success
	// false, Code 0) and does not return this error.
	ErrSpawnError = errors.New("failed to spawn wsl")

	// ErrStdinWriteError names the failure to write piped stdin to the
	// child. WslInvoker.Run reports that condition through its Status
	// (Success false, Code 0) and does not return this error.
	ErrStdinWriteError = errors.New("failed to write stdin to child")
)
