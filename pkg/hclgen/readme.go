package hclgen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mlorant/tfregen/pkg/engine"
)

var readmeTemplate = template.Must(template.New("readme").Parse(`# Generated Terraform Configuration

This configuration was reconstructed from a Terraform state snapshot by
tfregen. It mirrors the resources recorded in the state at the time of
generation; review every file before running any Terraform command against
real infrastructure.

Total resources: {{.Total}}

## Modules
{{range .Categories}}
### {{.Name}} ({{.Count}} {{if eq .Count 1}}resource{{else}}resources{{end}})
{{range .Types}}
- ` + "`{{.Name}}`" + ` × {{.Count}}{{end}}
{{end}}
## Layout

- ` + "`main.tf`" + ` — provider requirements and one module invocation per category.
- ` + "`modules/<category>/`" + ` — resource declarations (` + "`main.tf`" + `),
  variable and output stubs, and provider version constraints.

Resource attributes that Terraform computes (ids, ARNs, internal fields)
were dropped; everything else was carried over verbatim.
`))

type readmeCategory struct {
	Name  string
	Count int
	Types []readmeType
}

type readmeType struct {
	Name  string
	Count int
}

// Readme renders the generated README.md from the category groupings.
func Readme(groups engine.Groups, total int) ([]byte, error) {
	var categories []readmeCategory

	for _, name := range groups.Categories() {
		resources := groups[name]
		byType, types := engine.SplitByType(resources)

		category := readmeCategory{Name: name, Count: len(resources)}
		for _, t := range types {
			category.Types = append(category.Types, readmeType{Name: t, Count: len(byType[t])})
		}

		categories = append(categories, category)
	}

	data := struct {
		Total      int
		Categories []readmeCategory
	}{
		Total:      total,
		Categories: categories,
	}

	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render README: %w", err)
	}

	return buf.Bytes(), nil
}
