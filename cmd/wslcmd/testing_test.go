package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeBinary creates a stand-in file for the canonical binary at path.
func writeBinary(path string) error {
	return os.WriteFile(path, []byte("bin"), 0o644)
}

// fakeWslScript writes a stand-in "wsl" shell script so WslInvoker can be
// driven in tests without a real WSL installation.
func fakeWslScript(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake wsl stand-in requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake-wsl.sh")

	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("writing fake wsl script: %v", err)
	}

	return path
}
