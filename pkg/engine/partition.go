package engine

import "sort"

// Groups maps a category name to the resources classified into it, in
// extraction order. Groups are rebuilt from scratch on every run.
type Groups map[string][]Resource

// Group partitions resources by category.
func Group(resources []Resource) Groups {
	groups := make(Groups)
	for _, r := range resources {
		groups[r.Category] = append(groups[r.Category], r)
	}
	return groups
}

// Categories returns the group's category names in ascending order, so that
// emission is deterministic.
func (g Groups) Categories() []string {
	categories := make([]string, 0, len(g))
	for c := range g {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// SplitByType partitions a category's resources by resource type. The
// returned slice holds the types in ascending order; within one type,
// resources keep their extraction order.
func SplitByType(resources []Resource) (map[string][]Resource, []string) {
	byType := make(map[string][]Resource)
	for _, r := range resources {
		byType[r.Type] = append(byType[r.Type], r)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	return byType, types
}
