package queries

import (
	"context"
)

type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle never returns a nil slice on success.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views, nil
}
