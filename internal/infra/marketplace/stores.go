package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/errors"
)

// MyStore asks the API to resolve the store from the session identity.
func (c *Client) MyStore(ctx context.Context) (*entity.Store, error) {
	return c.fetchStore(ctx, "/stores/my-store")
}

// MerchantStore uses the merchant-scoped listing, a separate server code path.
func (c *Client) MerchantStore(ctx context.Context) (*entity.Store, error) {
	return c.fetchStore(ctx, "/stores/merchant")
}

// StoreByID fetches a store directly.
func (c *Client) StoreByID(ctx context.Context, id string) (*entity.Store, error) {
	if id == "" {
		return nil, errors.WithStack(domainerrors.ErrStoreNotFound)
	}

	return c.fetchStore(ctx, "/stores/"+url.PathEscape(id))
}

// FixStore calls the server-side repair of the merchant-to-store link.
func (c *Client) FixStore(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/debug/fix-store", nil, nil)

	return err
}

func (c *Client) fetchStore(ctx context.Context, path string) (*entity.Store, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	store, err := storeFromPayload(env.Data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return store, nil
}

// storeFromPayload accepts a store object, {"store": {...}}, or a list whose
// first element is the merchant's store. Empty payloads mean no store.
func storeFromPayload(data json.RawMessage) (*entity.Store, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.WithStack(domainerrors.ErrStoreNotFound)
	}

	if trimmed[0] == '[' {
		var stores []*entity.Store
		if err := json.Unmarshal(trimmed, &stores); err != nil {
			return nil, errors.WithStack(&domainerrors.UpstreamError{Msg: "malformed store list"})
		}
		for _, s := range stores {
			if s != nil && s.ID != "" {
				return s, nil
			}
		}

		return nil, errors.WithStack(domainerrors.ErrStoreNotFound)
	}

	var wrapped struct {
		Store  *entity.Store   `json:"store"`
		Stores []*entity.Store `json:"stores"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err == nil {
		if wrapped.Store != nil && wrapped.Store.ID != "" {
			return wrapped.Store, nil
		}
		if len(wrapped.Stores) > 0 {
			return storeFromPayload(mustMarshal(wrapped.Stores))
		}
	}

	var store entity.Store
	if err := json.Unmarshal(trimmed, &store); err != nil {
		return nil, errors.WithStack(&domainerrors.UpstreamError{Msg: "malformed store payload"})
	}
	if store.ID == "" {
		return nil, errors.WithStack(domainerrors.ErrStoreNotFound)
	}

	return &store, nil
}

func mustMarshal(v any) json.RawMessage {
	b, _ := json.Marshal(v)

	return b
}
