package hclgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/mlorant/tfregen/pkg/engine"
)

// ModuleMain renders a category module's main.tf: a header comment, then
// for each resource type (in ascending order) a type label comment followed
// by that type's resource blocks in extraction order.
func ModuleMain(category string, resources []engine.Resource) []byte {
	byType, types := engine.SplitByType(resources)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s module\n", category)
	b.WriteString("# Generated from Terraform state. Review before applying.\n")

	for _, t := range types {
		fmt.Fprintf(&b, "\n# %s\n", t)
		for i, r := range byType[t] {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(ResourceBlock(r))
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}

// ModuleVariables renders a category module's variables.tf: one variable
// per distinct (type, name, attribute key) triple seen in the category.
// Hyphens in the derived name become underscores; declarations are sorted
// by name. Every variable is declared as a nullable string placeholder for
// the operator to refine.
func ModuleVariables(resources []engine.Resource) []byte {
	descriptions := make(map[string]string)

	for _, r := range resources {
		for _, f := range r.Attributes {
			if f.Key == "id" || f.Key == "arn" || strings.HasPrefix(f.Key, "_") {
				continue
			}
			name := strings.ReplaceAll(fmt.Sprintf("%s_%s_%s", r.Type, r.Name, f.Key), "-", "_")
			descriptions[name] = fmt.Sprintf("Value for %s on %s.%s", f.Key, r.Type, r.Name)
		}
	}

	names := make([]string, 0, len(descriptions))
	for name := range descriptions {
		names = append(names, name)
	}
	sort.Strings(names)

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, name := range names {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("variable", []string{name})
		block.Body().SetAttributeTraversal("type", hcl.Traversal{
			hcl.TraverseRoot{Name: "string"},
		})
		block.Body().SetAttributeValue("default", cty.NullVal(cty.DynamicPseudoType))
		block.Body().SetAttributeValue("description", cty.StringVal(descriptions[name]))
	}

	return f.Bytes()
}

// ModuleOutputs renders a category module's outputs.tf: one output exposing
// each resource's id. Resources without an id are skipped.
func ModuleOutputs(resources []engine.Resource) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	first := true
	for _, r := range resources {
		if r.ID == "" {
			continue
		}
		if !first {
			body.AppendNewline()
		}
		first = false

		block := body.AppendNewBlock("output", []string{fmt.Sprintf("%s_%s_id", r.Type, r.Label())})
		block.Body().SetAttributeTraversal("value", hcl.Traversal{
			hcl.TraverseRoot{Name: r.Type},
			hcl.TraverseAttr{Name: r.Label()},
			hcl.TraverseAttr{Name: "id"},
		})
	}

	return f.Bytes()
}

// cloudCategories are the categories whose modules require the AWS provider
// family in their versions.tf. The kubernetes category requires the
// kubernetes provider instead; any other category gets an empty
// required_providers block.
var cloudCategories = map[string]bool{
	"compute":       true,
	"networking":    true,
	"security":      true,
	"storage":       true,
	"database":      true,
	"loadbalancing": true,
	"cdn":           true,
	"monitoring":    true,
}

// ModuleVersions renders a category module's versions.tf.
func ModuleVersions(category string) []byte {
	f := hclwrite.NewEmptyFile()

	tfBlock := f.Body().AppendNewBlock("terraform", nil)
	providers := tfBlock.Body().AppendNewBlock("required_providers", nil)

	switch {
	case cloudCategories[category]:
		providers.Body().SetAttributeValue("aws", cty.ObjectVal(map[string]cty.Value{
			"source":  cty.StringVal("hashicorp/aws"),
			"version": cty.StringVal("~> 5.0"),
		}))
	case category == "kubernetes":
		providers.Body().SetAttributeValue("kubernetes", cty.ObjectVal(map[string]cty.Value{
			"source":  cty.StringVal("hashicorp/kubernetes"),
			"version": cty.StringVal("~> 2.0"),
		}))
	}

	return f.Bytes()
}
