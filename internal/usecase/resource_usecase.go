package usecase

import (
	"context"

	"marketdash/internal/domain/entity"
)

// ResourceUsecase is the list/get/create/update/delete shape every dashboard page shares.
type ResourceUsecase[T any] interface {
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Merchant pages, gated by the store access verdict.
type (
	ProductUsecase   = ResourceUsecase[entity.Product]
	PromotionUsecase = ResourceUsecase[entity.Promotion]
	LayoutUsecase    = ResourceUsecase[entity.LayoutTemplate]
	ContentUsecase   = ResourceUsecase[entity.Content]
)

// CategoryUsecase adds the tree views to the category resource.
type CategoryUsecase interface {
	ResourceUsecase[entity.Category]

	// Tree returns the category forest, pruned to names containing filter
	// and their ancestors when filter is not blank.
	Tree(ctx context.Context, filter string) ([]*entity.Category, error)
	// Flat returns Tree flattened depth-first with each node's depth.
	Flat(ctx context.Context, filter string) ([]entity.FlatCategory, error)
}

// OrderUsecase adds the fulfilment status transition to the order resource.
type OrderUsecase interface {
	ResourceUsecase[entity.Order]

	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
}
