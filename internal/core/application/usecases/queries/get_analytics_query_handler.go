package queries

import (
	"context"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/core/domain/services"
	"mezzo/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// GetAnalyticsQueryHandler loads the full order set and the catalog's
// category mapping concurrently, then hands both to the analytics service.
// Unlike the list queries it reconstructs aggregates, because the report's
// loss rules live on the domain model.
type GetAnalyticsQueryHandler struct {
	orders    ports.OrderRepository
	catalog   ports.CatalogReader
	analytics *services.AnalyticsService
}

// NewGetAnalyticsQueryHandler creates a handler for analytics queries.
func NewGetAnalyticsQueryHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogReader,
	analytics *services.AnalyticsService,
) GetAnalyticsQueryHandler {
	return GetAnalyticsQueryHandler{
		orders:    orders,
		catalog:   catalog,
		analytics: analytics,
	}
}

// Handle executes the query.
func (h GetAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetAnalyticsQuery,
) (GetAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAnalyticsQueryResponse{}, err
	}

	var (
		all        []*order.Order
		categories map[kernel.UUID]string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		all, err = h.orders.GetAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		categories, err = h.catalog.ItemCategories(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return GetAnalyticsQueryResponse{}, err
	}

	report, err := h.analytics.Compute(all, categories)
	if err != nil {
		return GetAnalyticsQueryResponse{}, err
	}
	return GetAnalyticsQueryResponse{Report: report}, nil
}
