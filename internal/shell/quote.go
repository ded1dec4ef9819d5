package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Style selects a shell quoting convention.
type Style int

const (
	// POSIX quotes for sh-compatible shells.
	POSIX Style = iota
	// Windows wraps arguments in double quotes and doubles embedded quotes,
	// as cmd.exe expects.
	Windows
)

// StyleFor returns the quoting style of the default shell on goos.
func StyleFor(goos string) Style {
	if goos == "windows" {
		return Windows
	}
	return POSIX
}

// Quote renders args as a single command line in the given style.
func Quote(style Style, args []string) string {
	if style == POSIX {
		return shellquote.Join(args...)
	}

	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quoteWindows(arg)
	}
	return strings.Join(quoted, " ")
}

func quoteWindows(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"&|<>^%") {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
}
