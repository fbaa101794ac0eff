package pretty

import (
	"fmt"
	"sort"
	"strings"
)

// A CategorizedType names a resource type together with the category it was
// classified into. One entry per extracted resource.
type CategorizedType struct {
	Category string
	Type     string
}

// A Summarizer renders a human-readable overview of the resources found in a
// state document, grouped the same way the generated modules will be.
type Summarizer struct {
	total int

	// precomputed for rendering
	categories   []string
	countByType  map[string]map[string]int
	countByGroup map[string]int
}

// NewSummarizer builds a Summarizer for the given resources.
func NewSummarizer(resources []CategorizedType) Summarizer {
	countByType := make(map[string]map[string]int)
	countByGroup := make(map[string]int)

	for _, r := range resources {
		if countByType[r.Category] == nil {
			countByType[r.Category] = make(map[string]int)
		}
		countByType[r.Category][r.Type]++
		countByGroup[r.Category]++
	}

	var categories []string
	for c := range countByGroup {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return Summarizer{
		total:        len(resources),
		categories:   categories,
		countByType:  countByType,
		countByGroup: countByGroup,
	}
}

// Summary returns the rendered overview.
func (s Summarizer) Summary() string {
	if s.total == 0 {
		return Color("[yellow]Found no resources in the state document.")
	}

	header := Colorf("Found %s across %s.",
		StyledNumResources(s.total),
		styledNumCategories(len(s.categories)))

	var items []string
	for _, category := range s.categories {
		items = append(items, s.categoryItem(category))
	}

	return header + "\n\n" + BoxItems("Resources by category", items, "blue")
}

func (s Summarizer) categoryItem(category string) string {
	var types []string
	for t := range s.countByType[category] {
		types = append(types, t)
	}
	sort.Strings(types)

	lines := []string{
		Colorf("[bold]%s[reset] (%d)", category, s.countByGroup[category]),
	}
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("  %s: %d", t, s.countByType[category][t]))
	}

	return strings.Join(lines, "\n")
}

// StyledNumResources renders a resource count for terminal display.
func StyledNumResources(n int) string {
	if n == 1 {
		return Color("[bold]1 resource")
	}
	return Colorf("[bold]%d resources", n)
}

func styledNumCategories(n int) string {
	if n == 1 {
		return Color("[bold]1 category")
	}
	return Colorf("[bold]%d categories", n)
}
