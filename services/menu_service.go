package services

import (
	"errors"

	"orderweb/entity"
	"orderweb/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ListMenu returns the customer-facing menu: ordered categories with
// available items and their addons.
func (s *MenuService) ListMenu(tenantID uint) ([]entity.MenuCategory, error) {
	return s.Repo.ListCategories(tenantID)
}

type CategoryIn struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

func (s *MenuService) CreateCategory(tenantID uint, in *CategoryIn) (*entity.MenuCategory, error) {
	c := &entity.MenuCategory{TenantID: tenantID, Name: in.Name, Position: in.Position}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

type ItemIn struct {
	MenuCategoryID uint   `json:"menuCategoryId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Price          int64  `json:"price" binding:"min=0"`
	Available      *bool  `json:"available"`
}

func (s *MenuService) CreateItem(tenantID uint, in *ItemIn) (*entity.MenuItem, error) {
	m := &entity.MenuItem{
		TenantID:       tenantID,
		MenuCategoryID: in.MenuCategoryID,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Available:      true,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.CreateItem(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) UpdateItem(tenantID, itemID uint, in *ItemIn) error {
	updates := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
	}
	if in.MenuCategoryID != 0 {
		updates["menu_category_id"] = in.MenuCategoryID
	}
	if in.Available != nil {
		updates["available"] = *in.Available
	}
	return s.Repo.UpdateItem(tenantID, itemID, updates)
}

func (s *MenuService) DeleteItem(tenantID, itemID uint) error {
	return s.Repo.DeleteItem(tenantID, itemID)
}

type AddonIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Price      int64  `json:"price" binding:"min=0"`
}

func (s *MenuService) CreateAddon(tenantID uint, in *AddonIn) (*entity.Addon, error) {
	m, err := s.Repo.GetItemBasics(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if m.TenantID != tenantID {
		return nil, errors.New("menu item not in this restaurant")
	}
	a := &entity.Addon{MenuItemID: m.ID, Name: in.Name, Price: in.Price}
	if err := s.Repo.CreateAddon(a); err != nil {
		return nil, err
	}
	return a, nil
}
