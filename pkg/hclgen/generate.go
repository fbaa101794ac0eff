package hclgen

import (
	"fmt"
	"path"

	"github.com/mlorant/tfregen/pkg/engine"
)

// Files renders the full output tree for a resource set. Keys are paths
// relative to the output root, using forward slashes.
func Files(resources []engine.Resource, groups engine.Groups) (map[string][]byte, error) {
	categories := groups.Categories()

	files := map[string][]byte{
		"main.tf": RootMain(resources, categories),
	}

	readme, err := Readme(groups, len(resources))
	if err != nil {
		return nil, fmt.Errorf("failed to generate documentation: %w", err)
	}
	files["README.md"] = readme

	for _, category := range categories {
		dir := path.Join("modules", category)
		files[path.Join(dir, "main.tf")] = ModuleMain(category, groups[category])
		files[path.Join(dir, "variables.tf")] = ModuleVariables(groups[category])
		files[path.Join(dir, "outputs.tf")] = ModuleOutputs(groups[category])
		files[path.Join(dir, "versions.tf")] = ModuleVersions(category)
	}

	return files, nil
}
