package engine

// CategoryNode is a category with its rendering state and ordered children
type CategoryNode struct {
	Path     string
	Name     string
	Count    int
	Selected bool
	Expanded bool
	Children []CategoryNode
}

// BuildTree walks the flat hierarchy from the roots down. Siblings are ordered by
// descending count. sel may be nil.
func BuildTree(cats Categories, sel *Selection) []CategoryNode {
	return buildNodes(cats, sel, cats.Roots())
}

func buildNodes(cats Categories, sel *Selection, paths []string) []CategoryNode {
	if len(paths) == 0 {
		return nil
	}
	nodes := make([]CategoryNode, 0, len(paths))
	for _, path := range paths {
		node := CategoryNode{
			Path:     path,
			Name:     Name(path),
			Count:    cats.Count(path),
			Children: buildNodes(cats, sel, cats.ChildrenOf(path)),
		}
		if sel != nil {
			node.Selected = sel.IsSelected(path)
			node.Expanded = sel.IsExpanded(path)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
