package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"marketdash/internal/domain/entity"
	"marketdash/internal/domain/service"
)

// listKeys are the wrapper keys the API uses for list payloads, e.g. {"products": [...]}.
var listKeys = []string{"items", "results", "docs", "rows"}

// List fetches one page of a collection. out must point to a slice.
func (c *Client) List(ctx context.Context, path string, query entity.ListQuery, out any) (*service.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, path, listValues(query), nil)
	if err != nil {
		return nil, err
	}

	items, page := listPayload(env.Data, path)
	if err := decode(&envelope{Data: items}, out); err != nil {
		return nil, err
	}

	if env.Pagination != nil {
		return env.Pagination, nil
	}
	if page != nil {
		return page, nil
	}

	// no metadata: the whole collection came back in one page
	return &service.Pagination{Total: countItems(items), Page: max(query.Page, 1), Limit: query.Limit}, nil
}

// Get fetches one item.
func (c *Client) Get(ctx context.Context, path, id string, out any) error {
	env, err := c.do(ctx, http.MethodGet, itemPath(path, id), nil, nil)
	if err != nil {
		return err
	}

	return decode(env, out)
}

// Create posts a new item.
func (c *Client) Create(ctx context.Context, path string, body, out any) error {
	env, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}

	return decode(env, out)
}

// Update replaces an item.
func (c *Client) Update(ctx context.Context, path, id string, body, out any) error {
	env, err := c.do(ctx, http.MethodPut, itemPath(path, id), nil, body)
	if err != nil {
		return err
	}

	return decode(env, out)
}

// Patch partially updates the resource at path.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	env, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}

	return decode(env, out)
}

// Delete removes an item.
func (c *Client) Delete(ctx context.Context, path, id string) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(path, id), nil, nil)

	return err
}

func itemPath(path, id string) string {
	return strings.TrimSuffix(path, "/") + "/" + url.PathEscape(id)
}

func listValues(query entity.ListQuery) url.Values {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	for k, v := range query.Filters {
		if v != "" {
			values.Set(k, v)
		}
	}

	return values
}

// listPayload unwraps {"<resource>": [...], "total": n} style list payloads.
// The resource key is the last path segment, e.g. "products" for /merchant/products.
func listPayload(data json.RawMessage, path string) (json.RawMessage, *service.Pagination) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, nil
	}

	var obj map[string]json.RawMessage
	if json.Unmarshal(trimmed, &obj) != nil {
		return trimmed, nil
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	keys := append([]string{segments[len(segments)-1]}, listKeys...)

	for _, key := range keys {
		raw, ok := obj[key]
		if !ok || len(bytes.TrimSpace(raw)) == 0 || bytes.TrimSpace(raw)[0] != '[' {
			continue
		}

		return raw, embeddedPagination(obj)
	}

	return trimmed, nil
}

func embeddedPagination(obj map[string]json.RawMessage) *service.Pagination {
	if raw, ok := obj["pagination"]; ok {
		var p paginationDTO
		if json.Unmarshal(raw, &p) == nil {
			return &service.Pagination{Total: p.Total, Page: p.Page, Limit: p.Limit}
		}
	}

	raw, ok := obj["total"]
	if !ok {
		return nil
	}

	p := &service.Pagination{}
	if json.Unmarshal(raw, &p.Total) != nil {
		return nil
	}
	if v, ok := obj["page"]; ok {
		_ = json.Unmarshal(v, &p.Page)
	}
	if v, ok := obj["limit"]; ok {
		_ = json.Unmarshal(v, &p.Limit)
	}

	return p
}

func countItems(items json.RawMessage) int {
	var list []json.RawMessage
	if json.Unmarshal(items, &list) != nil {
		return 0
	}

	return len(list)
}
