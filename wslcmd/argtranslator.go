package wslcmd

import "strings"

// Translate converts a Windows-style argument vector into a WSL-shell
// argument vector, per spec.md §4.3. When convertPaths is false,
// arguments pass through verbatim. The returned slice always has the
// same length as args.
func Translate(args []string, convertPaths bool) []string {
	out := make([]string, len(args))

	if !convertPaths {
		copy(out, args)

		return out
	}

	for i, arg := range args {
		out[i] = translateOne(arg)
	}

	return out
}

// translateOne applies the backslash de-escape pass followed by the
// absolute-path wrapping pass to a single argument.
func translateOne(arg string) string {
	deescaped := deescapeBackslashes(arg)

	if IsAbsolute(deescaped) {
		return wrapWslpath(deescaped)
	}

	return deescaped
}

// deescapeBackslashes implements the backslash run-reduction law from
// spec.md §4.3/§8: a lone backslash becomes "/"; any run of k >= 2
// consecutive backslashes loses exactly one backslash (the remainder
// stays literal backslashes). The rule is applied per maximal run, left
// to right, leaving non-backslash characters untouched.
func deescapeBackslashes(s string) string {
	var b strings.Builder

	i := 0
	for i < len(s) {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++

			continue
		}

		run := 0
		for i+run < len(s) && s[i+run] == '\\' {
			run++
		}

		switch run {
		case 1:
			b.WriteByte('/')
		default:
			b.WriteString(strings.Repeat(`\`, run-1))
		}

		i += run
	}

	return b.String()
}

// wrapWslpath wraps an absolute path as a runtime wslpath invocation:
// $(wslpath '<escaped>'), with each single quote in path replaced by
// '\'' so the wrapped string is safe inside the outer single quotes.
func wrapWslpath(path string) string {
	escaped := strings.ReplaceAll(path, `'`, `'\''`)

	return "$(wslpath '" + escaped + "')"
}
