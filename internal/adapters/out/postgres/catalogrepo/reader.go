// Package catalogrepo provides read-only access to the menu catalog.
// Catalog management lives outside the order core; this adapter only serves
// the pricing and category lookups checkout and analytics need.
package catalogrepo

import (
	"context"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/ports"
	"mezzo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItemDTO represents the database structure of a menu item.
type MenuItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Category   string
	Price      decimal.Decimal     `gorm:"type:numeric(12,2)"`
	OfferPrice decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Available  bool
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormCatalogReader implements CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetItems resolves menu items by identifier. Every requested ID must exist.
func (r *GormCatalogReader) GetItems(
	ctx context.Context,
	ids []kernel.UUID,
) ([]ports.CatalogItem, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make([]ports.CatalogItem, 0, len(dtos))
	found := make(map[kernel.UUID]bool, len(dtos))
	for _, dto := range dtos {
		item, err := toCatalogItem(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		found[item.ID] = true
	}

	for _, id := range ids {
		if !found[id] {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
	}
	return items, nil
}

// ItemCategories returns the item-to-category mapping for the whole catalog.
func (r *GormCatalogReader) ItemCategories(ctx context.Context) (map[kernel.UUID]string, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Select("id", "category").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make(map[kernel.UUID]string, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		categories[id] = dto.Category
	}
	return categories, nil
}

func toCatalogItem(dto MenuItemDTO) (ports.CatalogItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	// An active offer replaces the regular price.
	effective := dto.Price
	if dto.OfferPrice.Valid {
		effective = dto.OfferPrice.Decimal
	}
	price, err := kernel.NewMoney(effective)
	if err != nil {
		return ports.CatalogItem{}, err
	}
	return ports.CatalogItem{
		ID:        id,
		Name:      dto.Name,
		Category:  dto.Category,
		Price:     price,
		Available: dto.Available,
	}, nil
}
