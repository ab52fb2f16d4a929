package entity

import (
	"slices"
	"strings"
)

// Category is a node of a store's category tree.
type Category struct {
	ID          string      `json:"_id,omitempty"`
	Name        string      `json:"name" validate:"required,max=120"`
	Slug        string      `json:"slug,omitempty"`
	Description string      `json:"description,omitempty"`
	ParentID    Ref         `json:"parent,omitempty"`
	SortOrder   int         `json:"sortOrder"`
	IsActive    bool        `json:"isActive"`
	Children    []*Category `json:"children,omitempty"`
}

// FlatCategory is a category with its depth in the tree, as rendered by list views.
type FlatCategory struct {
	Category *Category `json:"category"`
	Depth    int       `json:"depth"`
}

// FlattenTree walks the forest depth-first, parents before children.
func FlattenTree(roots []*Category) []FlatCategory {
	var out []FlatCategory

	var walk func(nodes []*Category, depth int)
	walk = func(nodes []*Category, depth int) {
		for _, node := range nodes {
			if node == nil {
				continue
			}
			out = append(out, FlatCategory{Category: node, Depth: depth})
			walk(node.Children, depth+1)
		}
	}
	walk(roots, 0)

	return out
}

// FilterTree returns a pruned copy of the forest holding every node that matches
// keep plus the ancestors needed to reach it. The input is left untouched.
func FilterTree(roots []*Category, keep func(*Category) bool) []*Category {
	var out []*Category
	for _, node := range roots {
		if node == nil {
			continue
		}

		children := FilterTree(node.Children, keep)
		if !keep(node) && len(children) == 0 {
			continue
		}

		cloned := *node
		cloned.Children = children
		out = append(out, &cloned)
	}

	return out
}

// NameContains is the search predicate used by the category list view.
func NameContains(term string) func(*Category) bool {
	needle := strings.ToLower(strings.TrimSpace(term))

	return func(c *Category) bool {
		return needle == "" || strings.Contains(strings.ToLower(c.Name), needle)
	}
}

// BuildTree links a flat list of categories by ParentID. Orphans become roots,
// and so does the first node of any parent cycle, so every input id appears once.
func BuildTree(flat []*Category) []*Category {
	byID := make(map[string]*Category, len(flat))
	for _, c := range flat {
		if _, dup := byID[c.ID]; dup {
			continue
		}
		cloned := *c
		cloned.Children = nil
		byID[c.ID] = &cloned
	}

	var roots []*Category
	linked := make(map[*Category]bool, len(byID))
	for _, c := range flat {
		node := byID[c.ID]
		if linked[node] {
			continue
		}
		linked[node] = true

		parent, ok := byID[c.ParentID.String()]
		if c.ParentID == "" || !ok || parent == node {
			roots = append(roots, node)

			continue
		}
		parent.Children = append(parent.Children, node)
	}

	reached := make(map[*Category]bool, len(byID))
	var mark func(node *Category)
	mark = func(node *Category) {
		if reached[node] {
			return
		}
		reached[node] = true
		for _, child := range node.Children {
			mark(child)
		}
	}
	for _, root := range roots {
		mark(root)
	}

	// nodes still unreached hang off a cycle; cut each loose from its parent
	for _, c := range flat {
		node := byID[c.ID]
		if reached[node] {
			continue
		}

		parent := byID[node.ParentID.String()]
		parent.Children = slices.DeleteFunc(parent.Children, func(child *Category) bool { return child == node })
		roots = append(roots, node)
		mark(node)
	}

	return roots
}
