package entity

import "time"

// User is an account as the admin pages see it.
type User struct {
	ID           string        `json:"_id,omitempty"`
	Email        string        `json:"email" validate:"required,email"`
	Name         string        `json:"name,omitempty" validate:"omitempty,max=120"`
	Role         Role          `json:"role" validate:"required,oneof=customer merchant admin"`
	IsActive     bool          `json:"isActive"`
	MerchantInfo *MerchantInfo `json:"merchantInfo,omitempty"`
	CreatedAt    time.Time     `json:"createdAt,omitzero"`
}

// ShippingZone is a platform-wide shipping rate for a set of regions.
type ShippingZone struct {
	ID                    string   `json:"_id,omitempty"`
	Name                  string   `json:"name" validate:"required,max=120"`
	Regions               []string `json:"regions" validate:"required,min=1,dive,required"`
	BaseRate              float64  `json:"baseRate" validate:"gte=0"`
	PerItemRate           float64  `json:"perItemRate" validate:"gte=0"`
	FreeShippingThreshold float64  `json:"freeShippingThreshold,omitempty" validate:"gte=0"`
	EstimatedDays         int      `json:"estimatedDays,omitempty" validate:"gte=0"`
	IsActive              bool     `json:"isActive"`
}

// PlatformSettings holds the marketplace-wide settings edited by admins.
type PlatformSettings struct {
	SiteName          string  `json:"siteName" validate:"required"`
	SupportEmail      string  `json:"supportEmail" validate:"omitempty,email"`
	Currency          string  `json:"currency" validate:"required,len=3"`
	CommissionRate    float64 `json:"commissionRate" validate:"gte=0,lte=100"`
	MaintenanceMode   bool    `json:"maintenanceMode"`
	AllowRegistration bool    `json:"allowRegistration"`
}

// Page is one page of a paginated list.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ListQuery is the filter and pagination state a list view sends.
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}
