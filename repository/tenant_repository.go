package repository

import (
	"orderweb/entity"

	"gorm.io/gorm"
)

type TenantRepository struct{ DB *gorm.DB }

func NewTenantRepository(db *gorm.DB) *TenantRepository { return &TenantRepository{DB: db} }

func (r *TenantRepository) GetBySlug(slug string) (*entity.Tenant, error) {
	var t entity.Tenant
	if err := r.DB.Where("slug = ?", slug).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) GetByID(id uint) (*entity.Tenant, error) {
	var t entity.Tenant
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// IsOwnedBy reports whether the tenant belongs to the given user.
func (r *TenantRepository) IsOwnedBy(tenantID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Tenant{}).
		Where("id = ? AND owner_id = ?", tenantID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *TenantRepository) List() ([]entity.Tenant, error) {
	var rows []entity.Tenant
	err := r.DB.Order("id").Find(&rows).Error
	return rows, err
}

func (r *TenantRepository) Create(t *entity.Tenant) error {
	return r.DB.Create(t).Error
}

func (r *TenantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Tenant{}).Where("id = ?", id).Updates(updates).Error
}
