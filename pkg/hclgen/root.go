package hclgen

import (
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/mlorant/tfregen/pkg/engine"
)

// A Provider is a provider namespace detected in the resource set.
type Provider struct {
	Name    string
	Source  string
	Version string
}

// providerRules maps resource type prefixes to providers, checked in order.
// Resource types matching no rule contribute no provider: the generated
// root configuration may then miss a required provider declaration. That is
// a known limitation; which behavior is correct (warn, infer, or ignore) is
// an open question, so the omission stays silent.
var providerRules = []struct {
	prefix   string
	provider Provider
}{
	{"aws_", Provider{Name: "aws", Source: "hashicorp/aws", Version: "~> 5.0"}},
	{"google_", Provider{Name: "google", Source: "hashicorp/google", Version: "~> 5.0"}},
	{"azurerm_", Provider{Name: "azurerm", Source: "hashicorp/azurerm", Version: "~> 3.0"}},
	{"kubernetes_", Provider{Name: "kubernetes", Source: "hashicorp/kubernetes", Version: "~> 2.0"}},
	{"helm_", Provider{Name: "helm", Source: "hashicorp/helm", Version: "~> 2.0"}},
}

// DetectProviders returns the distinct providers recognized in the resource
// set, sorted by name.
func DetectProviders(resources []engine.Resource) []Provider {
	seen := make(map[string]Provider)

	for _, r := range resources {
		for _, rule := range providerRules {
			if strings.HasPrefix(r.Type, rule.prefix) {
				seen[rule.provider.Name] = rule.provider
				break
			}
		}
	}

	providers := make([]Provider, 0, len(seen))
	for _, p := range seen {
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].Name < providers[j].Name })

	return providers
}

// RootMain renders the top-level main.tf: a terraform block declaring the
// detected providers, then one module invocation per category.
func RootMain(resources []engine.Resource, categories []string) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	tfBlock := body.AppendNewBlock("terraform", nil)
	providersBlock := tfBlock.Body().AppendNewBlock("required_providers", nil)
	for _, p := range DetectProviders(resources) {
		providersBlock.Body().SetAttributeValue(p.Name, cty.ObjectVal(map[string]cty.Value{
			"source":  cty.StringVal(p.Source),
			"version": cty.StringVal(p.Version),
		}))
	}

	for _, category := range categories {
		body.AppendNewline()
		moduleBlock := body.AppendNewBlock("module", []string{category})
		moduleBlock.Body().SetAttributeValue("source", cty.StringVal("./modules/"+category))
	}

	return f.Bytes()
}
