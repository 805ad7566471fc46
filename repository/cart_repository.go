package repository

import (
	"errors"

	"orderweb/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart for the tenant. A missing cart
// comes back empty rather than as an error so the UI can always render it.
func (r *CartRepository) GetCartWithItems(userID, tenantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ? AND tenant_id = ?", userID, tenantID).
		Preload("Items").
		Preload("Items.Addons").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, TenantID: tenantID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID, tenantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ? AND tenant_id = ?", userID, tenantID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, TenantID: tenantID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges lines with the same menu item, note and addon set,
// otherwise inserts a new line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ? AND note = ? AND addon_key = ?",
		cartID, row.MenuItemID, row.Note, row.AddonKey).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = int64(exist.Qty) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	// item must belong to one of the user's carts
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID, tenantID uint) error {
	return tx.Exec(`
		DELETE FROM cart_items
		 WHERE cart_id IN (SELECT id FROM carts WHERE user_id = ? AND tenant_id = ?)
	`, userID, tenantID).Error
}
