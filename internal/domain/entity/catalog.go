package entity

import "time"

// Product is a store's sellable item.
type Product struct {
	ID          string    `json:"_id,omitempty"`
	StoreID     Ref       `json:"store,omitempty"`
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku,omitempty" validate:"omitempty,max=64"`
	Price       float64   `json:"price" validate:"gte=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	CategoryID  Ref       `json:"category,omitempty"`
	Images      []string  `json:"images,omitempty" validate:"omitempty,dive,url"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// PromotionType distinguishes how a promotion discounts.
type PromotionType string

const (
	PromotionPercentage   PromotionType = "percentage"
	PromotionFixedAmount  PromotionType = "fixed_amount"
	PromotionFreeShipping PromotionType = "free_shipping"
)

// Promotion is a discount campaign run by a store.
type Promotion struct {
	ID        string        `json:"_id,omitempty"`
	StoreID   Ref           `json:"store,omitempty"`
	Name      string        `json:"name" validate:"required,max=120"`
	Code      string        `json:"code,omitempty" validate:"omitempty,alphanum,max=32"`
	Type      PromotionType `json:"type" validate:"required,oneof=percentage fixed_amount free_shipping"`
	Value     float64       `json:"value" validate:"gte=0"`
	StartsAt  time.Time     `json:"startsAt,omitzero"`
	EndsAt    time.Time     `json:"endsAt,omitzero"`
	IsActive  bool          `json:"isActive"`
	UsageCap  int           `json:"usageLimit,omitempty" validate:"gte=0"`
	UsedCount int           `json:"usedCount,omitempty"`
}

// LayoutTemplate is a storefront layout a merchant can apply.
type LayoutTemplate struct {
	ID       string         `json:"_id,omitempty"`
	StoreID  Ref            `json:"store,omitempty"`
	Name     string         `json:"name" validate:"required,max=120"`
	Sections []LayoutBlock  `json:"sections" validate:"dive"`
	IsActive bool           `json:"isActive"`
	Settings map[string]any `json:"settings,omitempty"`
}

// LayoutBlock is one section of a layout template.
type LayoutBlock struct {
	Type     string         `json:"type" validate:"required"`
	Position int            `json:"position" validate:"gte=0"`
	Config   map[string]any `json:"config,omitempty"`
}

// Content is a CMS page or banner owned by a store.
type Content struct {
	ID          string    `json:"_id,omitempty"`
	StoreID     Ref       `json:"store,omitempty"`
	Title       string    `json:"title" validate:"required,max=200"`
	Slug        string    `json:"slug,omitempty"`
	Type        string    `json:"type" validate:"required,oneof=page banner post"`
	Body        string    `json:"body,omitempty"`
	IsPublished bool      `json:"isPublished"`
	PublishedAt time.Time `json:"publishedAt,omitzero"`
}
