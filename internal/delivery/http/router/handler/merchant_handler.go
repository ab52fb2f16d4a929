package handler

import (
	"net/http"

	"marketdash/internal/delivery/http/response"
	"marketdash/internal/domain/entity"
	"marketdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MerchantHandlerParams holds the store-gated usecases, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	Categories usecase.CategoryUsecase
	Products   usecase.ProductUsecase
	Orders     usecase.OrderUsecase
	Promotions usecase.PromotionUsecase
	Layouts    usecase.LayoutUsecase
	Content    usecase.ContentUsecase
}

// MerchantHandler serves the pages a merchant manages their store with.
type MerchantHandler struct {
	categories usecase.CategoryUsecase
	orders     usecase.OrderUsecase
	resources  map[string]interface{ Mount(*echo.Group) }
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		categories: params.Categories,
		orders:     params.Orders,
		resources: map[string]interface{ Mount(*echo.Group) }{
			"/categories": NewResourceHandler[entity.Category](params.Categories),
			"/products":   NewResourceHandler(params.Products),
			"/orders":     NewResourceHandler[entity.Order](params.Orders),
			"/promotions": NewResourceHandler(params.Promotions),
			"/layouts":    NewResourceHandler(params.Layouts),
			"/content":    NewResourceHandler(params.Content),
		},
	}
}

// Register mounts every merchant resource under g.
func (h *MerchantHandler) Register(g *echo.Group) {
	// echo matches static segments ahead of params, so /categories/tree wins over /categories/:id
	g.GET("/categories/tree", h.CategoryTree)
	g.PATCH("/orders/:id/status", h.UpdateOrderStatus)

	for prefix, resource := range h.resources {
		resource.Mount(g.Group(prefix))
	}
}

// CategoryTree returns the category forest; flat=true returns it flattened with depths.
func (h *MerchantHandler) CategoryTree(c echo.Context) error {
	var (
		filter string
		flat   bool
	)
	if err := echo.QueryParamsBinder(c).String("filter", &filter).Bool("flat", &flat).BindError(); err != nil {
		return response.BindingError(c, "Invalid category query")
	}

	ctx := c.Request().Context()
	if flat {
		rows, err := h.categories.Flat(ctx, filter)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, rows)
	}

	roots, err := h.categories.Tree(ctx, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, roots)
}

// UpdateOrderStatusRequest is the body of an order status change.
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order to a new fulfilment status.
func (h *MerchantHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
