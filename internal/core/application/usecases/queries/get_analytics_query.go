package queries

import (
	"errors"

	"mezzo/internal/core/domain/services"
	"mezzo/internal/pkg/guard"
)

var ErrGetAnalyticsQueryIsNotConstructed = errors.New(
	"GetAnalyticsQuery must be created via NewGetAnalyticsQuery constructor",
)

// GetAnalyticsQuery computes the business report: order counts, revenue,
// dispatch losses, and item and category popularity.
type GetAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAnalyticsQuery creates a parameterless analytics query.
func NewGetAnalyticsQuery() GetAnalyticsQuery {
	return GetAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalyticsQueryIsNotConstructed)
}

// GetAnalyticsQueryResponse carries the computed report.
type GetAnalyticsQueryResponse struct {
	Report services.Report
}
