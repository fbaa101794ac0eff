package state

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	tfjson "github.com/hashicorp/terraform-json"
)

// decodeShowJSON parses the output of `terraform show -json` into a
// Document. Resources with the same type and name (count or for_each
// expansions) are folded back into one declaration with multiple instances,
// in the order Terraform listed them.
func decodeShowJSON(data []byte) (*Document, error) {
	var st tfjson.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, &ParseError{Reason: "not a `terraform show -json` document", Err: err}
	}

	var doc Document
	if st.Values == nil || st.Values.RootModule == nil {
		return &doc, nil
	}

	index := make(map[string]int) // "type.name" -> position in doc.Resources
	collectModule(st.Values.RootModule, &doc, index)

	return &doc, nil
}

func collectModule(mod *tfjson.StateModule, doc *Document, index map[string]int) {
	for _, r := range mod.Resources {
		if r.Mode == tfjson.DataResourceMode {
			continue
		}

		inst := Instance{Attributes: fromGoValue(r.AttributeValues).Object}

		key := r.Type + "." + r.Name
		if i, ok := index[key]; ok {
			doc.Resources[i].Instances = append(doc.Resources[i].Instances, inst)
			continue
		}

		index[key] = len(doc.Resources)
		doc.Resources = append(doc.Resources, Resource{
			Type:      r.Type,
			Name:      r.Name,
			Instances: []Instance{inst},
		})
	}

	for _, child := range mod.ChildModules {
		collectModule(child, doc, index)
	}
}

// fromGoValue converts a value decoded by encoding/json into the Value
// union. Map keys come out sorted: Terraform already lost the document's
// field order by the time it produced this format.
func fromGoValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return NullVal()
	case bool:
		return BoolVal(t)
	case float64:
		return NumberVal(strconv.FormatFloat(t, 'f', -1, 64))
	case json.Number:
		return NumberVal(t.String())
	case string:
		return StringVal(t)
	case []any:
		elems := make([]Value, 0, len(t))
		for _, e := range t {
			elems = append(elems, fromGoValue(e))
		}
		return ListVal(elems)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fields := make(Object, 0, len(t))
		for _, k := range keys {
			fields = append(fields, Field{Key: k, Value: fromGoValue(t[k])})
		}
		return ObjectVal(fields)
	default:
		return StringVal(fmt.Sprintf("%v", t))
	}
}
