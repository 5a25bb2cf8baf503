package display

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MenuItem renders one numbered menu line.
func MenuItem(i int, label string) string {
	return fmt.Sprintf("%2d. %s\n", i, label)
}

// Notice formats an out-of-band line, used for events that arrive while
// the player is mid-prompt.
func Notice(msg string) string {
	return fmt.Sprintf("\n*** %s ***\n", msg)
}
