// Package wslcmd implements the launcher core: name parsing, argument
// translation, WSL child invocation, and the on-disk link registry that
// backs the management CLI in cmd/wslcmd.
package wslcmd

import (
	"os"
	"path/filepath"
	"strings"
)

// ExeExtension is the executable extension entries and the canonical
// binary are expected to carry, per spec.md §6.
const ExeExtension = "exe"

// Basename returns p's filename with its extension stripped, or "" if p
// is empty. Mirrors PathView.basename: ill-formed input yields absent
// (the empty string) rather than an error.
func Basename(p string) string {
	name := Filename(p)
	if name == "" {
		return ""
	}

	ext := filepath.Ext(name)

	return strings.TrimSuffix(name, ext)
}

// Filename returns p's final path component including any extension, or
// "" if p is empty.
func Filename(p string) string {
	if p == "" {
		return ""
	}

	return filepath.Base(p)
}

// Parent returns p's parent directory, or "" if p is empty.
func Parent(p string) string {
	if p == "" {
		return ""
	}

	return filepath.Dir(p)
}

// Extension returns p's extension without the leading dot, lower-cased
// for case-insensitive comparison against ExeExtension, or "" if p has
// none.
func Extension(p string) string {
	ext := filepath.Ext(Filename(p))
	if ext == "" {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAbsolute reports whether p is an absolute path in either the Unix
// sense (leading "/") or the Windows drive-letter sense ("X:\..." or
// "X:/..."), regardless of the host build's GOOS. Recognizing
// Windows-absolute paths independent of runtime.GOOS is what lets
// ArgTranslator's wrapping decision (and its tests) run deterministically
// on any build platform; see DESIGN.md for the grounding source.
//
// UNC paths ("\\host\share\...") are deliberately NOT treated as absolute
// here: wslpath translates drvfs drive mounts, not UNC shares, and
// spec.md §8 scenario 3 confirms a UNC-shaped argument is left unwrapped.
func IsAbsolute(p string) bool {
	if p == "" {
		return false
	}

	if p[0] == '/' {
		return true
	}

	return isWindowsDriveAbsolute(p)
}

// isWindowsDriveAbsolute reports whether p begins with a drive letter
// followed by ":\" or ":/", e.g. "C:\Users" or "C:/Users".
func isWindowsDriveAbsolute(p string) bool {
	if len(p) < 3 {
		return false
	}

	d := p[0]
	if !(('a' <= d && d <= 'z') || ('A' <= d && d <= 'Z')) {
		return false
	}

	return p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}

// Canonicalize follows all symlinks in p and returns the resolved
// absolute path. It returns ("", false) rather than an error when the
// target does not exist or cannot be resolved, matching PathView's
// absent-not-error contract.
func Canonicalize(p string) (string, bool) {
	if p == "" {
		return "", false
	}

	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", false
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", false
	}

	return abs, true
}

// ReadDir enumerates dir's immediate children as full paths. It returns
// nil rather than an error when the directory cannot be read; any error
// from os.ReadDir discards the whole listing, including entries read
// before it.
func ReadDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	paths := make([]string, 0, len(entries))

	for _, e := range entries {
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths
}
