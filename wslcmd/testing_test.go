package wslcmd

import (
	"os"
	"testing"
)

// writeFile creates a small file at path.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// symlink creates path -> oldname, the relative-target convention
// LinkRegistry itself uses for entries.
func symlink(t *testing.T, oldname, path string) error {
	t.Helper()

	return os.Symlink(oldname, path)
}
