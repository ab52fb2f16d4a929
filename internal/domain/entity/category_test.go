package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []*Category {
	return []*Category{
		{ID: "1", Name: "Clothing", Children: []*Category{
			{ID: "1a", Name: "Shirts", ParentID: "1"},
			{ID: "1b", Name: "Shoes", ParentID: "1", Children: []*Category{
				{ID: "1b1", Name: "Running Shoes", ParentID: "1b"},
			}},
		}},
		{ID: "2", Name: "Kitchen"},
	}
}

func TestFlattenTree_DepthFirst(t *testing.T) {
	flat := FlattenTree(sampleTree())

	ids := make([]string, 0, len(flat))
	depths := make([]int, 0, len(flat))
	for _, f := range flat {
		ids = append(ids, f.Category.ID)
		depths = append(depths, f.Depth)
	}

	assert.Equal(t, []string{"1", "1a", "1b", "1b1", "2"}, ids)
	assert.Equal(t, []int{0, 1, 1, 2, 0}, depths)
}

func TestFilterTree_KeepsAncestorsOfMatches(t *testing.T) {
	tree := sampleTree()
	filtered := FilterTree(tree, NameContains("running"))

	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
	require.Len(t, filtered[0].Children, 1)
	assert.Equal(t, "1b", filtered[0].Children[0].ID)
	require.Len(t, filtered[0].Children[0].Children, 1)
	assert.Equal(t, "1b1", filtered[0].Children[0].Children[0].ID)

	// input is not pruned
	assert.Len(t, tree[0].Children, 2)
}

func TestFilterTree_EmptyTermKeepsEverything(t *testing.T) {
	assert.Len(t, FlattenTree(FilterTree(sampleTree(), NameContains(" "))), 5)
}

func TestFilterTree_NoMatch(t *testing.T) {
	assert.Empty(t, FilterTree(sampleTree(), NameContains("garden")))
}

func TestBuildTree(t *testing.T) {
	flat := []*Category{
		{ID: "1", Name: "Clothing"},
		{ID: "1a", Name: "Shirts", ParentID: "1"},
		{ID: "x", Name: "Orphan", ParentID: "missing"},
	}

	roots := BuildTree(flat)

	require.Len(t, roots, 2)
	assert.Equal(t, "1", roots[0].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "1a", roots[0].Children[0].ID)
	assert.Equal(t, "x", roots[1].ID)
}

func TestBuildTree_ParentCycleKeepsEveryNode(t *testing.T) {
	flat := []*Category{
		{ID: "r", Name: "Root"},
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "c", Name: "C", ParentID: "b"},
	}

	roots := BuildTree(flat)

	require.Len(t, roots, 2)
	assert.Equal(t, "r", roots[0].ID)
	assert.Equal(t, "a", roots[1].ID)

	var ids []string
	for _, node := range FlattenTree(roots) {
		ids = append(ids, node.Category.ID)
	}
	assert.Equal(t, []string{"r", "a", "b", "c"}, ids)
}

func TestBuildTree_DuplicateIDsAppearOnce(t *testing.T) {
	flat := []*Category{
		{ID: "1", Name: "Clothing"},
		{ID: "1a", Name: "Shirts", ParentID: "1"},
		{ID: "1a", Name: "Shirts", ParentID: "1"},
	}

	roots := BuildTree(flat)

	require.Len(t, roots, 1)
	assert.Len(t, roots[0].Children, 1)
}
