package ports

import (
	"context"

	"mezzo/internal/core/domain/model/kernel"
)

// CatalogItem is a read-only view of a menu item. Checkout prices order
// lines from the catalog, never from client input. Price is the effective
// price: the offer price when one is active, the regular price otherwise.
type CatalogItem struct {
	ID        kernel.UUID
	Name      string
	Category  string
	Price     kernel.Money
	Available bool
}

// CatalogReader provides read-only access to the menu catalog. Catalog
// management itself lives outside the order core; this boundary exists so
// checkout and analytics see authoritative names, prices, and categories.
type CatalogReader interface {
	// GetItems resolves menu items by identifier. Returns
	// errs.ObjectNotFoundError if any requested item does not exist.
	GetItems(ctx context.Context, ids []kernel.UUID) ([]CatalogItem, error)

	// ItemCategories returns the item-to-category mapping for the whole
	// catalog, used by the analytics rankings.
	ItemCategories(ctx context.Context) (map[kernel.UUID]string, error)
}
