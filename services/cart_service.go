package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"orderweb/entity"
	"orderweb/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Qty        int    `json:"qty" binding:"min=1"`
	Note       string `json:"note"`
	AddonIDs   []uint `json:"addonIds"`
}

func (s *CartService) Get(userID, tenantID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(userID, tenantID)
	if err != nil {
		return nil, 0, err
	}
	return c, CartSubtotal(c.Items), nil
}

func (s *CartService) Add(userID, tenantID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID, tenantID)
	if err != nil {
		return err
	}

	m, err := s.MenuRepo.GetItemBasics(in.MenuItemID)
	if err != nil {
		return err
	}
	if m.TenantID != tenantID {
		return errors.New("menu item not in this restaurant")
	}
	if !m.Available {
		return errors.New("menu item is unavailable")
	}

	if len(in.AddonIDs) > 0 {
		cnt, err := s.MenuRepo.CountAddonsBelongToItem(m.ID, in.AddonIDs)
		if err != nil {
			return err
		}
		if cnt != int64(len(in.AddonIDs)) {
			return errors.New("invalid addons for this item")
		}
	}
	addons, err := s.MenuRepo.GetAddonsByIDs(in.AddonIDs)
	if err != nil {
		return err
	}

	addonRows := make([]entity.CartItemAddon, 0, len(addons))
	for _, a := range addons {
		addonRows = append(addonRows, entity.CartItemAddon{
			AddonID: a.ID, Name: a.Name, Price: a.Price,
		})
	}

	line := &entity.CartItem{
		MenuItemID: m.ID,
		Qty:        in.Qty,
		UnitPrice:  LineTotal(m.Price, addonRows, 1),
		Total:      LineTotal(m.Price, addonRows, in.Qty),
		Note:       in.Note,
		AddonKey:   addonKey(in.AddonIDs),
		Addons:     addonRows,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// addonKey is a stable fingerprint of the addon set so identical lines merge.
func addonKey(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID, tenantID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID, tenantID)
	})
}
