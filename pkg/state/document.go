package state

// A Document is a parsed Terraform state document. It contains the state's
// resources in the order they appear in the source.
type Document struct {
	Resources []Resource
}

// A Resource is a single resource declaration from the state. A declaration
// with N instances represents N provisioned copies of one logical resource,
// for example when the configuration used count or for_each.
type Resource struct {
	// The resource's type, e.g. "aws_instance".
	Type string

	// The resource's name within its module, e.g. "web".
	Name string

	// The provisioned instances of this declaration, in state order.
	Instances []Instance
}

// An Instance is one provisioned copy of a resource declaration.
type Instance struct {
	// The instance's last-known attributes, in document order.
	Attributes Object
}
