// Package services contains stateless domain services operating across
// aggregates.
package services

import (
	"sort"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
)

// topLimit caps the popularity rankings.
const topLimit = 5

// ItemPopularity is one row of the item ranking: total quantity sold and
// revenue attributed to a single menu item across completed orders.
type ItemPopularity struct {
	ItemID   kernel.UUID
	Name     string
	Quantity int
	Revenue  kernel.Money
}

// CategoryPopularity aggregates ItemPopularity rows by menu category.
type CategoryPopularity struct {
	Category string
	Quantity int
	Revenue  kernel.Money
}

// Report is the analytics snapshot computed over a set of orders.
//
// Revenue counts completed orders only. Losses count orders cancelled after
// dispatch: the food already left the kitchen, so the order total is sunk
// cost. Popularity rankings are quantity-weighted over completed orders.
type Report struct {
	TotalOrders     int
	CountsByStatus  map[order.Status]int
	Revenue         kernel.Money
	Losses          kernel.Money
	AverageOrder    kernel.Money
	TopItems        []ItemPopularity
	TopCategories   []CategoryPopularity
	CompletedOrders int
	CancelledOrders int
}

// AnalyticsService computes business reports from order aggregates. It is a
// pure function of its inputs and holds no state.
type AnalyticsService struct{}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// Compute builds a Report from the given orders. itemCategories maps a menu
// item ID to its category name; items without a mapping are grouped under
// "uncategorized".
func (s *AnalyticsService) Compute(
	orders []*order.Order,
	itemCategories map[kernel.UUID]string,
) (Report, error) {
	report := Report{
		CountsByStatus: make(map[order.Status]int),
		Revenue:        kernel.ZeroMoney(),
		Losses:         kernel.ZeroMoney(),
		AverageOrder:   kernel.ZeroMoney(),
	}

	itemStats := make(map[kernel.UUID]*ItemPopularity)
	categoryStats := make(map[string]*CategoryPopularity)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Report{}, err
		}

		report.TotalOrders++
		report.CountsByStatus[o.Status()]++

		switch o.Status() {
		case order.Completed:
			report.CompletedOrders++
			report.Revenue = report.Revenue.Add(o.TotalAmount())
			s.tallyItems(o, itemCategories, itemStats, categoryStats)
		case order.Cancelled:
			report.CancelledOrders++
			if o.CancellationStage().CausesDispatchLoss() {
				report.Losses = report.Losses.Add(o.TotalAmount())
			}
		}
	}

	if report.CompletedOrders > 0 {
		report.AverageOrder = report.Revenue.DivQuantity(report.CompletedOrders)
	}

	report.TopItems = rankItems(itemStats)
	report.TopCategories = rankCategories(categoryStats)
	return report, nil
}

func (s *AnalyticsService) tallyItems(
	o *order.Order,
	itemCategories map[kernel.UUID]string,
	itemStats map[kernel.UUID]*ItemPopularity,
	categoryStats map[string]*CategoryPopularity,
) {
	for _, item := range o.Items() {
		subtotal := item.Subtotal()

		stat, ok := itemStats[item.ItemID()]
		if !ok {
			stat = &ItemPopularity{
				ItemID:  item.ItemID(),
				Name:    item.Name(),
				Revenue: kernel.ZeroMoney(),
			}
			itemStats[item.ItemID()] = stat
		}
		stat.Quantity += item.Quantity()
		stat.Revenue = stat.Revenue.Add(subtotal)

		category, ok := itemCategories[item.ItemID()]
		if !ok {
			category = "uncategorized"
		}
		catStat, ok := categoryStats[category]
		if !ok {
			catStat = &CategoryPopularity{
				Category: category,
				Revenue:  kernel.ZeroMoney(),
			}
			categoryStats[category] = catStat
		}
		catStat.Quantity += item.Quantity()
		catStat.Revenue = catStat.Revenue.Add(subtotal)
	}
}

func rankItems(stats map[kernel.UUID]*ItemPopularity) []ItemPopularity {
	ranked := make([]ItemPopularity, 0, len(stats))
	for _, stat := range stats {
		ranked = append(ranked, *stat)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topLimit {
		ranked = ranked[:topLimit]
	}
	return ranked
}

func rankCategories(stats map[string]*CategoryPopularity) []CategoryPopularity {
	ranked := make([]CategoryPopularity, 0, len(stats))
	for _, stat := range stats {
		ranked = append(ranked, *stat)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Category < ranked[j].Category
	})
	if len(ranked) > topLimit {
		ranked = ranked[:topLimit]
	}
	return ranked
}
