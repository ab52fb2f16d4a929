package impl

import (
	"context"
	"strings"

	"marketdash/internal/domain/entity"
	"marketdash/internal/usecase"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	*resourceService[entity.Category]
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params ResourceServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		resourceService: newResourceService[entity.Category](params, "/categories", "category", gateStore),
	}
}

// maxCategoryPages bounds Tree against an API that ignores the page parameter.
const maxCategoryPages = 50

// Tree fetches every category and returns the forest, filtered by name.
func (srv *categoryService) Tree(ctx context.Context, filter string) ([]*entity.Category, error) {
	items, err := srv.all(ctx)
	if err != nil {
		return nil, err
	}

	roots := categoryRoots(items)
	if strings.TrimSpace(filter) == "" {
		return roots, nil
	}

	return entity.FilterTree(roots, entity.NameContains(filter)), nil
}

// all walks the category pages until the reported total is reached.
func (srv *categoryService) all(ctx context.Context) ([]entity.Category, error) {
	var items []entity.Category
	for number := 1; number <= maxCategoryPages; number++ {
		page, err := srv.List(ctx, entity.ListQuery{Page: number, Limit: maxPageLimit})
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		if len(page.Items) == 0 || len(items) >= page.Total {
			break
		}
	}

	return items, nil
}

// Flat returns the filtered forest in display order, each node with its depth.
func (srv *categoryService) Flat(ctx context.Context, filter string) ([]entity.FlatCategory, error) {
	roots, err := srv.Tree(ctx, filter)
	if err != nil {
		return nil, err
	}

	return entity.FlattenTree(roots), nil
}

// categoryRoots accepts either shape the API returns: a nested tree of root
// nodes, or a flat list linked by parent ids.
func categoryRoots(items []entity.Category) []*entity.Category {
	nodes := make([]*entity.Category, 0, len(items))
	nested := false
	for i := range items {
		nodes = append(nodes, &items[i])
		if len(items[i].Children) > 0 {
			nested = true
		}
	}

	if nested {
		roots := make([]*entity.Category, 0, len(nodes))
		for _, node := range nodes {
			if node.ParentID == "" {
				roots = append(roots, node)
			}
		}

		return roots
	}

	return entity.BuildTree(nodes)
}
