package engine

import (
	"errors"
	"fmt"

	"github.com/mlorant/tfregen/pkg/state"
)

// ErrNoResources reports that a valid state document contained no resources.
// There is nothing to generate, but the situation is not a parse failure.
var ErrNoResources = errors.New("no resources found in state")

// Extract flattens a state document into one Resource per instance.
//
// Resources keep the order they have in the document. An empty document
// yields an empty slice, not an error; callers decide how to report it.
func Extract(doc *state.Document) []Resource {
	var resources []Resource

	for _, decl := range doc.Resources {
		multi := len(decl.Instances) > 1

		for i, inst := range decl.Instances {
			r := Resource{
				Type:       decl.Type,
				Name:       decl.Name,
				ID:         instanceID(decl.Name, i, inst.Attributes),
				Attributes: inst.Attributes,
				Category:   Classify(decl.Type),
			}
			if multi {
				index := i
				r.InstanceIndex = &index
			}

			resources = append(resources, r)
		}
	}

	return resources
}

// instanceID returns the instance's "id" attribute when it is a non-empty
// string, and a synthesized identifier otherwise.
func instanceID(name string, index int, attrs state.Object) string {
	if id := attrs.GetString("id"); id != "" {
		return id
	}
	return fmt.Sprintf("%s_%d", name, index)
}
