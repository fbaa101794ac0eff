package hclgen

import (
	"fmt"
	"strings"

	"github.com/mlorant/tfregen/pkg/engine"
	"github.com/mlorant/tfregen/pkg/state"
)

// excludedAttributes are top-level resource attributes that never appear in
// generated configuration: identifiers and other values the provider
// computes, plus meta-arguments that belong to the configuration rather
// than the resource.
var excludedAttributes = map[string]bool{
	"id":         true,
	"arn":        true,
	"unique_id":  true,
	"self_link":  true,
	"owner_id":   true,
	"tags_all":   true,
	"timeouts":   true,
	"lifecycle":  true,
	"provider":   true,
	"depends_on": true,
}

// ResourceBlock renders one resource block. Attributes keep the order they
// have in the state document; excluded, null and empty-string attributes
// are dropped.
func ResourceBlock(r engine.Resource) string {
	var b strings.Builder

	fmt.Fprintf(&b, "resource %q %q {\n", r.Type, r.Label())

	for _, f := range r.Attributes {
		if skipAttribute(f) {
			continue
		}
		fmt.Fprintf(&b, "  %s = %s\n", f.Key, FormatValue(f.Value, 1))
	}

	b.WriteString("}")

	return b.String()
}

func skipAttribute(f state.Field) bool {
	if excludedAttributes[f.Key] || strings.HasPrefix(f.Key, "_") {
		return true
	}
	if f.Value.Kind == state.KindNull {
		return true
	}
	if f.Value.Kind == state.KindString && f.Value.Str == "" {
		return true
	}
	return false
}
