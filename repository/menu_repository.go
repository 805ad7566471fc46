package repository

import (
	"orderweb/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) ListCategories(tenantID uint) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("tenant_id = ?", tenantID).
		Preload("Items", "available = ?", true).
		Preload("Items.Addons").
		Order("position").
		Find(&cats).Error
	return cats, err
}

// GetItemBasics loads the fields checkout/cart pricing needs.
func (r *MenuRepository) GetItemBasics(itemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id", "tenant_id", "menu_category_id", "name", "price", "available").
		First(&m, itemID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// CountAddonsBelongToItem verifies every id belongs to the menu item.
func (r *MenuRepository) CountAddonsBelongToItem(itemID uint, addonIDs []uint) (int64, error) {
	if len(addonIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.DB.Model(&entity.Addon{}).
		Where("menu_item_id = ? AND id IN ?", itemID, addonIDs).
		Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) GetAddonsByIDs(ids []uint) ([]entity.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []entity.Addon
	err := r.DB.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *MenuRepository) CreateCategory(c *entity.MenuCategory) error { return r.DB.Create(c).Error }

func (r *MenuRepository) CreateItem(m *entity.MenuItem) error { return r.DB.Create(m).Error }

func (r *MenuRepository) CreateAddon(a *entity.Addon) error { return r.DB.Create(a).Error }

func (r *MenuRepository) UpdateItem(tenantID, itemID uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND tenant_id = ?", itemID, tenantID).
		Updates(updates).Error
}

func (r *MenuRepository) DeleteItem(tenantID, itemID uint) error {
	return r.DB.Where("id = ? AND tenant_id = ?", itemID, tenantID).
		Delete(&entity.MenuItem{}).Error
}
