package engine

import (
	"fmt"

	"github.com/mlorant/tfregen/pkg/state"
)

// A Resource is the flattened, per-instance working representation of a
// resource from a state document. The extractor creates Resources; every
// downstream emitter consumes them read-only.
type Resource struct {
	// The resource's type, e.g. "aws_instance".
	Type string

	// The resource's name as declared in the state.
	Name string

	// The resource's identifier. Taken from the "id" attribute when present
	// and non-empty, otherwise synthesized as "{name}_{index}".
	ID string

	// The instance's attributes, in document order.
	Attributes state.Object

	// The category the resource's type was classified into. Never empty.
	Category string

	// The instance's position within its declaration. Set only when the
	// declaration had more than one instance; nil otherwise.
	InstanceIndex *int
}

// Label returns the name to use for this resource in generated
// configuration. Instances of a multi-instance declaration share a name in
// the state, so the instance index is appended to keep labels unique.
func (r Resource) Label() string {
	if r.InstanceIndex == nil {
		return r.Name
	}
	return fmt.Sprintf("%s_%d", r.Name, *r.InstanceIndex)
}
