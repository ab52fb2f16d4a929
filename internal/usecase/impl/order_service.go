package impl

import (
	"context"

	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/errors"
	"marketdash/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	*resourceService[entity.Order]
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params ResourceServiceParams) usecase.OrderUsecase {
	return &orderService{
		resourceService: newResourceService[entity.Order](params, "/orders", "order", gateStore),
	}
}

// UpdateStatus moves an order to a new fulfilment status.
func (srv *orderService) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.NewValidationError(map[string]string{
			"status": "must be one of: pending processing shipped delivered cancelled refunded",
		}))
	}

	return srv.patch(ctx, id, "status", map[string]entity.OrderStatus{"status": status})
}
