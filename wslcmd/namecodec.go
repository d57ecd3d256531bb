package wslcmd

import "strings"

// NameDelimiter separates command, user, and distribution fields in a
// visible entry name. The source carries two conventions ("!" and "$");
// this implementation picks "!" per spec.md §6 and documents the choice
// here rather than leaving it implicit (spec.md §9 open question).
const NameDelimiter = "!"

// DetachedPrefix marks an entry's detached (no-console) form. A visible
// name beginning with this prefix decodes with Detached set.
const DetachedPrefix = "."

// ParsedName is the decoded form of a visible entry name.
type ParsedName struct {
	Command  string
	User     string // "" if absent
	Dist     string // "" if absent
	Detached bool
}

// Decode parses a visible entry name (with or without its executable
// extension) into a ParsedName. It returns (ParsedName{}, false) — an
// absent result, not an error — when the name has an empty command
// component, per spec.md §3 invariant 4 and §4.2.
func Decode(visibleName string) (ParsedName, bool) {
	stem := trimExeExtension(visibleName)

	var detached bool
	if after, ok := strings.CutPrefix(stem, DetachedPrefix); ok {
		detached = true
		stem = after
	}

	command, rest, hasRest := strings.Cut(stem, NameDelimiter)
	if command == "" {
		return ParsedName{}, false
	}

	var user, dist string

	if hasRest {
		user, dist, _ = strings.Cut(rest, NameDelimiter)
	}

	return ParsedName{
		Command:  command,
		User:     user,
		Dist:     dist,
		Detached: detached,
	}, true
}

// trimExeExtension strips a trailing ".exe" (case-insensitive) from name,
// if present.
func trimExeExtension(name string) string {
	if Extension(name) != ExeExtension {
		return name
	}

	return name[:len(name)-len(ExeExtension)-1]
}

// Encode reconstitutes a visible entry name from its fields. command must
// be non-empty; user and dist may be empty to omit the corresponding
// field (dist is only meaningful when user is also set, per the grammar
// in spec.md §4.2, but Encode does not enforce that — callers needing
// the invariant enforce it themselves, e.g. the --dist CLI flag requiring
// --user).
func Encode(command, user, dist string) string {
	var b strings.Builder

	b.WriteString(command)

	if user != "" {
		b.WriteString(NameDelimiter)
		b.WriteString(user)

		if dist != "" {
			b.WriteString(NameDelimiter)
			b.WriteString(dist)
		}
	}

	b.WriteString(".")
	b.WriteString(ExeExtension)

	return b.String()
}

// EncodeDetached returns the detached form of an already-encoded visible
// name, i.e. the detached prefix prepended to it.
func EncodeDetached(visibleName string) string {
	return DetachedPrefix + visibleName
}
