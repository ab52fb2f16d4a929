package handler

import (
	"net/http"

	"marketdash/internal/delivery/http/response"
	"marketdash/internal/domain/entity"
	"marketdash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// query parameters with a fixed meaning; the rest are passed on as filters
var reservedQueryParams = map[string]bool{"page": true, "limit": true, "search": true}

// ResourceHandler serves the list/get/create/update/delete routes of one resource.
type ResourceHandler[T any] struct {
	uc usecase.ResourceUsecase[T]
}

// NewResourceHandler is the constructor for ResourceHandler.
func NewResourceHandler[T any](uc usecase.ResourceUsecase[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{uc: uc}
}

// Mount registers the CRUD routes on g.
func (h *ResourceHandler[T]) Mount(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET with page, limit, search and filter query parameters.
func (h *ResourceHandler[T]) List(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return response.BindingError(c, "Invalid list query")
	}

	page, err := h.uc.List(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *ResourceHandler[T]) Get(c echo.Context) error {
	item, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

func (h *ResourceHandler[T]) Create(c echo.Context) error {
	item := new(T)
	if err := c.Bind(item); err != nil {
		return response.BindingError(c, "Invalid request body")
	}

	created, err := h.uc.Create(c.Request().Context(), item)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

func (h *ResourceHandler[T]) Update(c echo.Context) error {
	item := new(T)
	if err := c.Bind(item); err != nil {
		return response.BindingError(c, "Invalid request body")
	}

	updated, err := h.uc.Update(c.Request().Context(), c.Param("id"), item)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// listQuery reads the list view state from the query string.
func listQuery(c echo.Context) (entity.ListQuery, error) {
	var query entity.ListQuery
	err := echo.QueryParamsBinder(c).
		Int("page", &query.Page).
		Int("limit", &query.Limit).
		String("search", &query.Search).
		BindError()
	if err != nil {
		return query, err
	}

	for key, values := range c.QueryParams() {
		if reservedQueryParams[key] || len(values) == 0 || values[0] == "" {
			continue
		}
		if query.Filters == nil {
			query.Filters = map[string]string{}
		}
		query.Filters[key] = values[0]
	}

	return query, nil
}
