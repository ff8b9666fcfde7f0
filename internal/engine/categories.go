package engine

import (
	"sort"
	"strings"

	"expview/internal/domain"
)

const (
	// MaxCategoryDepth is the number of leading path segments that form categories
	MaxCategoryDepth = 3
	// rootSegment is dropped from the front of a path before categories are formed
	rootSegment = "test"
)

// Categories is the category tree derived from a record set.
// Hierarchy is kept flat: Children maps a category path to its direct children.
type Categories struct {
	Counts   map[string]int
	Children map[string]map[string]struct{}
}

// ExtractCategories derives category counts and parent/child edges from record paths.
// Every record counts once toward each of its ancestor categories, up to MaxCategoryDepth
// levels. The final segment is the file name and never forms a category.
func ExtractCategories(records []domain.TestRecord) Categories {
	cats := Categories{
		Counts:   make(map[string]int),
		Children: make(map[string]map[string]struct{}),
	}

	for _, record := range records {
		parts := strings.Split(record.Path, "/")

		start := 0
		if parts[0] == rootSegment {
			start = 1
		}
		end := min(len(parts)-1, start+MaxCategoryDepth)

		prefix := ""
		for i := start; i < end; i++ {
			if parts[i] == "" {
				break
			}

			parent := prefix
			if i == start {
				prefix = parts[i]
			} else {
				prefix = prefix + "/" + parts[i]
			}
			cats.Counts[prefix]++

			if i > start {
				children, ok := cats.Children[parent]
				if !ok {
					children = make(map[string]struct{})
					cats.Children[parent] = children
				}
				children[prefix] = struct{}{}
			}
		}
	}

	return cats
}

// Count returns the number of records under a category
func (c Categories) Count(path string) int {
	return c.Counts[path]
}

// Has reports whether the category exists in the current tree
func (c Categories) Has(path string) bool {
	_, ok := c.Counts[path]
	return ok
}

// Roots returns the top-level categories ordered by descending count
func (c Categories) Roots() []string {
	var roots []string
	for path := range c.Counts {
		if !strings.Contains(path, "/") {
			roots = append(roots, path)
		}
	}
	c.sortByCount(roots)
	return roots
}

// ChildrenOf returns the direct children of a category ordered by descending count
func (c Categories) ChildrenOf(path string) []string {
	children := make([]string, 0, len(c.Children[path]))
	for child := range c.Children[path] {
		children = append(children, child)
	}
	c.sortByCount(children)
	return children
}

// Name returns the last segment of a category path
func Name(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Depth returns the number of segments in a category path
func Depth(path string) int {
	return strings.Count(path, "/") + 1
}

func (c Categories) sortByCount(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		ci, cj := c.Counts[paths[i]], c.Counts[paths[j]]
		if ci != cj {
			return ci > cj
		}
		return paths[i] < paths[j]
	})
}
