package pretty

import (
	"fmt"
	"strings"
	"unicode"
)

type boxGlyphs struct {
	start     string
	line      string
	separator string
	end       string
}

func newBoxGlyphs(color string) boxGlyphs {
	return boxGlyphs{
		start:     Color(fmt.Sprintf("[%s][bold]┌─", color)),
		line:      Color(fmt.Sprintf("[%s][bold]│", color)),
		separator: Color(fmt.Sprintf("[%s][bold]├─", color)),
		end:       Color(fmt.Sprintf("[%s][bold]└─", color)),
	}
}

// BoxItems draws a vertical box around a list of items, with a separator
// between consecutive items.
func BoxItems(title string, items []string, color string) string {
	g := newBoxGlyphs(color)

	var boxed strings.Builder

	if len(title) > 0 {
		title = Color(fmt.Sprintf("[%s][bold]%s", color, title))
		boxed.WriteString(g.start + " " + title + "\n" + g.line + "\n")
	} else {
		boxed.WriteString(g.start + "\n")
	}

	for i, item := range items {
		if i > 0 {
			boxed.WriteString(g.separator + "\n")
		}
		boxed.WriteString(prefixLines(item, g.line+" ") + "\n")
	}

	boxed.WriteString(g.end)

	return boxed.String()
}

// BoxSection draws a vertical box around a single block of content.
func BoxSection(title, content, color string) string {
	g := newBoxGlyphs(color)

	var boxed strings.Builder

	if len(title) > 0 {
		title = Color(fmt.Sprintf("[%s][bold]%s", color, title))
		boxed.WriteString(g.start + " " + title + "\n" + g.line + "\n")
	} else {
		boxed.WriteString(g.start + "\n")
	}

	boxed.WriteString(prefixLines(content, g.line+" ") + "\n")
	boxed.WriteString(g.end)

	return boxed.String()
}

func prefixLines(text string, prefix string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = prefix + line
		lines[i] = trimTrailingWhitespace(lines[i])
	}

	return strings.Join(lines, "\n")
}

func trimTrailingWhitespace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
