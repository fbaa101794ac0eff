package pretty

import (
	"fmt"
	"strings"
)

var colorsEnabled = true

// DisableColors turns all color tags into no-ops. Call this once, before
// rendering any output, when writing to a destination that does not
// understand ANSI escape codes.
func DisableColors() {
	colorsEnabled = false
}

var ansiCodes = map[string]string{
	"[reset]":  "\033[0m",
	"[bold]":   "\033[1m",
	"[red]":    "\033[31m",
	"[green]":  "\033[32m",
	"[yellow]": "\033[33m",
	"[blue]":   "\033[34m",
}

// Color replaces style tags like [bold] and [green] in s with ANSI escape
// codes and appends a reset. When colors are disabled, tags are stripped.
func Color(s string) string {
	tagged := false

	for tag, code := range ansiCodes {
		if !strings.Contains(s, tag) {
			continue
		}
		tagged = true

		if colorsEnabled {
			s = strings.ReplaceAll(s, tag, code)
		} else {
			s = strings.ReplaceAll(s, tag, "")
		}
	}

	if tagged && colorsEnabled && !strings.HasSuffix(s, ansiCodes["[reset]"]) {
		s += ansiCodes["[reset]"]
	}

	return s
}

// Colorf formats according to a format specifier and then colors the result.
func Colorf(format string, a ...any) string {
	return Color(fmt.Sprintf(format, a...))
}

// Error renders an error for terminal display.
func Error(err error) string {
	return Colorf("[red][bold]Error:[reset] %v", err)
}

// Warning renders a warning message for terminal display.
func Warning(msg string) string {
	return Colorf("[yellow][bold]Warning:[reset] %s", msg)
}
