package wslcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LinkRegistry is a directory-scoped view of command entries built from
// two-level symlink chains, per spec.md §4.5. A registry is parameterised
// by one canonical binary; constructing one from binpath resolves that
// binary once, at construction time.
type LinkRegistry struct {
	binpath     string
	origBinpath string
	dir         string
	binFilename string

	mu       sync.Mutex
	cached   map[string]struct{}
	cachedAt int64 // directory mtime (UnixNano) observed at last scan
}

// NewLinkRegistry constructs a LinkRegistry rooted at filepath.Dir(binpath),
// parameterised by binpath's canonical resolution. It returns (nil, false)
// if binpath cannot be canonicalized, mirroring PathView's absent-not-error
// contract (spec.md §4.5).
func NewLinkRegistry(binpath string) (*LinkRegistry, bool) {
	orig, ok := Canonicalize(binpath)
	if !ok {
		return nil, false
	}

	r := &LinkRegistry{
		binpath:     binpath,
		origBinpath: orig,
		dir:         Parent(binpath),
		binFilename: Filename(orig),
	}

	r.Refresh(true)

	return r, true
}

// List returns the current cached set of entry names (without extension),
// lazily refreshing it first if the registry directory's mtime has
// advanced past the cached timestamp, per spec.md §4.5.
func (r *LinkRegistry) List() []string {
	r.refreshIfStale()

	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.cached))
	for name := range r.cached {
		names = append(names, name)
	}

	return names
}

// Refresh rescans the registry directory. When force is false it only
// rescans if the directory's mtime has advanced since the last scan
// (the lazy path); when true it always rescans.
func (r *LinkRegistry) Refresh(force bool) {
	if !force && !r.stale() {
		return
	}

	mtime := r.dirMtime()

	entries := ReadDir(r.dir)

	found := make(map[string]struct{}, len(entries))
	for _, p := range entries {
		if !r.IsEntry(p) {
			continue
		}

		found[Basename(p)] = struct{}{}
	}

	r.mu.Lock()
	r.cached = found
	r.cachedAt = mtime
	r.mu.Unlock()
}

func (r *LinkRegistry) refreshIfStale() {
	if r.stale() {
		r.Refresh(false)
	}
}

func (r *LinkRegistry) stale() bool {
	r.mu.Lock()
	cachedAt := r.cachedAt
	r.mu.Unlock()

	return r.dirMtime() != cachedAt
}

func (r *LinkRegistry) dirMtime() int64 {
	info, err := os.Stat(r.dir)
	if err != nil {
		return 0
	}

	return info.ModTime().UnixNano()
}

// IsEntry reports whether p, a path in the registry's directory, satisfies
// all five membership conditions of spec.md §4.5. It never modifies the
// filesystem and is total over arbitrary directory states.
func (r *LinkRegistry) IsEntry(p string) bool {
	name := Filename(p)
	if Extension(name) != ExeExtension {
		return false
	}

	target, err := os.Readlink(p)
	if err != nil {
		return false
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(Parent(p), target)
	}

	pCanon, ok := Canonicalize(p)
	if !ok || pCanon != r.origBinpath {
		return false
	}

	targetCanon, ok := Canonicalize(target)
	if !ok || targetCanon != r.origBinpath {
		return false
	}

	if name == r.binFilename || Filename(target) == r.binFilename {
		return false
	}

	if hasDetachedPrefix(name) {
		return false
	}

	return Filename(target) == DetachedPrefix+name
}

// Add creates a new Entry named cmd: a detached link pointing at the
// canonical binary, and a visible link pointing at the detached link, per
// spec.md §4.5 add steps 1-8.
func (r *LinkRegistry) Add(cmd string) error {
	visible := Filename(cmd) + "." + ExeExtension

	if visible == r.binFilename || hasDetachedPrefix(visible) {
		return fmt.Errorf("%w: %q", ErrInvalidName, cmd)
	}

	visiblePath := filepath.Join(r.dir, visible)

	if r.IsEntry(visiblePath) {
		return fmt.Errorf("%w: %q", ErrAlreadyExists, cmd)
	}

	detached := DetachedPrefix + visible
	detachedPath := filepath.Join(r.dir, detached)

	if err := os.Symlink(r.binFilename, detachedPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFilesystemError, err)
	}

	if err := os.Symlink(detached, visiblePath); err != nil {
		_ = os.Remove(detachedPath)

		return fmt.Errorf("%w: %v", ErrFilesystemError, err)
	}

	r.Refresh(true)

	return nil
}

// Remove deletes the Entry named cmd: the visible link first, then its
// detached link, per spec.md §4.5 remove steps 1-5.
func (r *LinkRegistry) Remove(cmd string) error {
	visible := Filename(cmd) + "." + ExeExtension
	visiblePath := filepath.Join(r.dir, visible)

	if _, err := os.Lstat(visiblePath); err != nil {
		return fmt.Errorf("%w: %q", ErrNotFound, cmd)
	}

	if !r.IsEntry(visiblePath) {
		return fmt.Errorf("%w: %q", ErrNotAnEntry, cmd)
	}

	detached := DetachedPrefix + visible
	detachedPath := filepath.Join(r.dir, detached)

	if err := os.Remove(visiblePath); err != nil {
		return fmt.Errorf("%w: %v", ErrFilesystemError, err)
	}

	if err := os.Remove(detachedPath); err != nil {
		_ = os.Symlink(detached, visiblePath)

		return fmt.Errorf("%w: %v", ErrFilesystemError, err)
	}

	r.Refresh(true)

	return nil
}

// BinPath returns the path the registry was constructed from.
func (r *LinkRegistry) BinPath() string { return r.binpath }

// OrigBinPath returns the registry's canonical binary.
func (r *LinkRegistry) OrigBinPath() string { return r.origBinpath }

// Dir returns the registry directory (the parent of BinPath).
func (r *LinkRegistry) Dir() string { return r.dir }

func hasDetachedPrefix(name string) bool {
	return strings.HasPrefix(name, DetachedPrefix)
}
