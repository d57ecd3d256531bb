package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/snoopy3476/wslcmd"
)

// verbAliases maps each canonical verb to its recognized spellings, per
// spec.md §6's CLI surface table. Verbs are matched by prefix against this
// set.
var verbAliases = map[string][]string{
	"add":    {"add", "a", "new", "n"},
	"remove": {"remove", "del", "d", "rm", "r"},
	"list":   {"list", "ls", "l"},
}

const managementUsage = `wslcmd - WSL command launcher

Usage:
  wslcmd add [--user <name>] [--dist <name>] [--detached] <command>...
                            Create a command entry (aliases: a, new, n)
  wslcmd remove <name>...  Remove a command entry (aliases: del, d, rm, r)
  wslcmd list              List installed command entries (aliases: ls, l)

Entries are created next to the wslcmd binary as filesystem links; running
them invokes the named command inside WSL.`

// runManagement is the ManagementFrontend: a thin argument-parsing layer
// that matches a verb by prefix and drives LinkRegistry, per spec.md §6.
func runManagement(registry *wslcmd.LinkRegistry, stdout, stderr io.Writer, args []string, debug *DebugLogger) int {
	if len(args) == 0 {
		fprintln(stdout, managementUsage)

		return 0
	}

	switch args[0] {
	case "-h", "--help":
		fprintln(stdout, managementUsage)

		return 0
	case "-v", "--version":
		fprintln(stdout, formatVersion())

		return 0
	}

	verb, ok := resolveVerb(args[0])
	if !ok {
		fprintln(stderr, "unknown verb:", args[0])
		fprintln(stderr)
		fprintln(stderr, managementUsage)

		return exitInternalError
	}

	operands := args[1:]

	switch verb {
	case "add":
		return runAdd(registry, stdout, stderr, operands, debug)
	case "remove":
		return runRemove(registry, stdout, stderr, operands, debug)
	case "list":
		return runList(registry, stdout)
	default:
		fprintln(stderr, "unknown verb:", args[0])

		return exitInternalError
	}
}

// resolveVerb matches the given token, case-insensitively, against
// verbAliases by prefix: the token resolves to the verb of an alias that
// starts with it, so an alias or any leading part of one is accepted.
func resolveVerb(token string) (string, bool) {
	token = strings.ToLower(token)

	for verb, aliases := range verbAliases {
		for _, alias := range aliases {
			if strings.HasPrefix(alias, token) {
				return verb, true
			}
		}
	}

	return "", false
}

// runAdd parses add's flags (--user, --dist, --detached) and creates one
// entry per operand, per spec.md §6's CLI surface and the additional
// management flags.
func runAdd(registry *wslcmd.LinkRegistry, stdout, stderr io.Writer, operands []string, debug *DebugLogger) int {
	flags := newFlagSet("wslcmd add")
	flagUser := flags.String("user", "", "WSL user to bake into the entry name")
	flagDist := flags.String("dist", "", "WSL distribution to bake into the entry name (requires --user)")
	flagDetached := flags.Bool("detached", false, "report the entry's no-console alias as its primary name")

	if err := flags.Parse(operands); err != nil {
		fprintln(stderr, "wslcmd add:", err)

		return exitInternalError
	}

	names := flags.Args()
	if len(names) == 0 {
		fprintln(stderr, "wslcmd add: at least one command name is required")

		return exitInternalError
	}

	if *flagDist != "" && *flagUser == "" {
		fprintln(stderr, "wslcmd add: --dist requires --user")

		return exitInternalError
	}

	exit := 0

	for _, command := range names {
		visible := wslcmd.Encode(command, *flagUser, *flagDist)

		err := registry.Add(strings.TrimSuffix(visible, "."+wslcmd.ExeExtension))
		debug.RegistryOp("add", visible, err)

		if err != nil {
			fprintln(stderr, fmt.Sprintf("wslcmd add %s: %v", visible, err))

			exit = exitInternalError

			continue
		}

		reported := visible
		if *flagDetached {
			reported = wslcmd.EncodeDetached(visible)
		}

		fprintln(stdout, reported)
	}

	return exit
}

// runRemove removes one entry per operand, printing a diagnostic per
// failure and returning non-zero if any single operation failed, per
// spec.md §6.
func runRemove(registry *wslcmd.LinkRegistry, stdout, stderr io.Writer, operands []string, debug *DebugLogger) int {
	if len(operands) == 0 {
		fprintln(stderr, "wslcmd remove: at least one name is required")

		return exitInternalError
	}

	exit := 0

	for _, name := range operands {
		err := registry.Remove(name)
		debug.RegistryOp("remove", name, err)

		if err != nil {
			fprintln(stderr, fmt.Sprintf("wslcmd remove %s: %v", name, err))

			exit = exitInternalError

			continue
		}

		fprintln(stdout, name)
	}

	return exit
}

// runList prints the registry's entries, one per line, sorted for
// deterministic output (LinkRegistry.List() itself is an unordered set
// per spec.md §5).
func runList(registry *wslcmd.LinkRegistry, stdout io.Writer) int {
	names := registry.List()
	sort.Strings(names)

	for _, name := range names {
		fprintln(stdout, name)
	}

	return 0
}
