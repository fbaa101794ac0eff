package hclgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mlorant/tfregen/pkg/state"
)

// FormatValue renders an attribute value as HCL expression text. The first
// line of the result carries no indentation; the caller places it after
// "key = ". Multi-line forms indent nested lines by two spaces per level
// relative to the whole file, with the closing delimiter at the given
// indent level.
//
// The function is deterministic: the same value always renders to the same
// bytes, which keeps repeated runs against the same state diffable.
func FormatValue(v state.Value, indent int) string {
	switch v.Kind {
	case state.KindNull:
		return "null"
	case state.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case state.KindNumber:
		// Verbatim decimal text from the source document.
		return v.Number
	case state.KindString:
		return formatString(v.Str)
	case state.KindList:
		return formatList(v.List, indent)
	case state.KindObject:
		return formatObject(v.Object, indent)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatString(s string) string {
	if strings.Contains(s, "\n") {
		// A heredoc keeps the raw text verbatim, with no escaping inside
		// the block. The terminator must start its own line, so it sits at
		// column zero regardless of nesting.
		return "<<EOF\n" + s + "\nEOF"
	}

	// Backslashes are escaped along with double quotes so that the emitted
	// literal parses back to the original string. Control characters other
	// than the line break handled above pass through unescaped.
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func formatList(elems []state.Value, indent int) string {
	if len(elems) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, elem := range elems {
		b.WriteString(indentation(indent + 1))
		b.WriteString(FormatValue(elem, indent+1))
		if i < len(elems)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indentation(indent) + "]")
	return b.String()
}

func formatObject(fields state.Object, indent int) string {
	var visible []state.Field
	for _, f := range fields {
		if hiddenObjectKey(f.Key) {
			continue
		}
		visible = append(visible, f)
	}

	if len(visible) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, f := range visible {
		b.WriteString(indentation(indent + 1))
		b.WriteString(objectKey(f.Key))
		b.WriteString(" = ")
		b.WriteString(FormatValue(f.Value, indent+1))
		b.WriteString("\n")
	}
	b.WriteString(indentation(indent) + "}")
	return b.String()
}

// hiddenObjectKey reports whether an object entry is dropped from generated
// configuration: internal keys and identifiers the provider computes.
func hiddenObjectKey(key string) bool {
	return strings.HasPrefix(key, "_") || key == "id" || key == "arn"
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// objectKey renders an object key, quoting it when it is not a bare HCL
// identifier (tag keys like "kubernetes.io/name" need quotes).
func objectKey(key string) string {
	if identifierPattern.MatchString(key) {
		return key
	}
	return formatString(key)
}

func indentation(level int) string {
	return strings.Repeat("  ", level)
}
